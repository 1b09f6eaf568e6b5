package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound signals row absence. Callers that need "absent, not an
// error" semantics (owner-scoped order lookup, product validation)
// test for it with errors.Is.
var ErrNotFound = errors.New("record not found")

// PersistenceError carries a statement or connection failure out of the
// repository together with the operation that hit it.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("repository: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// wrap converts a gorm error into the repository taxonomy: nil stays
// nil, ErrRecordNotFound becomes ErrNotFound, everything else a
// PersistenceError.
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return &PersistenceError{Op: op, Err: err}
}
