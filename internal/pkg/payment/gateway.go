package payment

import "context"

// Order holds the gateway's handle for a pending payment. It is not
// persisted; the gateway owns the order's lifecycle.
type Order struct {
	ID       string
	Amount   int64
	Currency string
	Receipt  string
}

// Gateway defines the interface for the external payment gateway.
type Gateway interface {
	// CreateOrder requests a new payment order with auto-capture enabled.
	// Amount is in the smallest currency unit.
	CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*Order, error)
}
