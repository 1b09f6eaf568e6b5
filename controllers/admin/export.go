package adminControllers

import (
	"net/http"

	"github.com/electromart/ecommerce-api/models"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// GET /api/admin/orders/export
// Downloads every order joined with the owning user as an xlsx sheet.
func ExportOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.AdminOrder
		err := db.Table("orders").
			Select("orders.*, users.email, users.full_name").
			Joins("JOIN users ON users.id = orders.user_id").
			Order("orders.created_at DESC").
			Scan(&orders).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "OrderRef", "Customer", "Email", "Total",
			"ShippingAddress", "PaymentMethod", "Status", "PaymentStatus", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range orders {
			row := sheet.AddRow()
			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(o.OrderRef)
			row.AddCell().SetValue(o.FullName)
			row.AddCell().SetValue(o.Email)
			row.AddCell().SetValue(o.TotalAmount.StringFixed(2))
			row.AddCell().SetValue(o.ShippingAddress)
			row.AddCell().SetValue(o.PaymentMethod)
			row.AddCell().SetValue(string(o.Status))
			row.AddCell().SetValue(string(o.PaymentStatus))
			row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
