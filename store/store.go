package store

import (
	"errors"

	"academy_manager/model"
)

var (
	// ErrDuplicateOrderID is returned when a payment with the same order id
	// already exists. The order id is the idempotency key toward the payment
	// provider, so duplicates are rejected rather than merged.
	ErrDuplicateOrderID = errors.New("duplicate order id")
	ErrNotFound         = errors.New("payment not found")
)

// PaymentStore is the persistence contract for payments. The durable GORM
// implementation is used when the database is reachable at startup; otherwise
// the volatile in-memory implementation takes its place. The volatile store is
// never reconciled back into the database.
type PaymentStore interface {
	Create(p *model.Payment) error
	ByID(id uint) (*model.Payment, error)
	ByOrderID(orderID string) (*model.Payment, error)
	List(limit, page *int) ([]model.Payment, int64, error)
	Update(p *model.Payment) error
	Durable() bool
}
