package orderControllers

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/electromart/ecommerce-api/repository"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"gorm.io/gorm"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var (
	wsMu      sync.Mutex
	wsClients = make(map[*websocket.Conn]bool)
)

// GET /api/admin/orders/ws
// Streams newly placed orders to connected back-office dashboards.
func OrderFeed(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	wsMu.Lock()
	wsClients[conn] = true
	wsMu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			wsMu.Lock()
			delete(wsClients, conn)
			wsMu.Unlock()
			break
		}
	}
}

// notifyOrderPlaced broadcasts a freshly placed order to the feed.
// Best-effort: the order is already committed, a broadcast failure only
// costs the live update.
func notifyOrderPlaced(db *gorm.DB, orderID uint) {
	order, err := repository.OrderByID(db, orderID)
	if err != nil {
		log.Printf("order feed: fetch order %d: %v", orderID, err)
		return
	}

	data, err := json.Marshal(order)
	if err != nil {
		return
	}

	wsMu.Lock()
	defer wsMu.Unlock()
	for client := range wsClients {
		if err := client.WriteMessage(websocket.TextMessage, data); err != nil {
			client.Close()
			delete(wsClients, client)
		}
	}
}
