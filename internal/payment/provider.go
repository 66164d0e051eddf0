// Package payment hides the payment gateway behind a single-method contract.
package payment

import (
	"context"
	"errors"

	"campus-parking/internal/data/entity"
)

// ErrDeclined is returned when the gateway refuses to start a payment.
var ErrDeclined = errors.New("payment initiation declined")

// Provider starts a payment for a pending transaction and returns the URL
// the customer is redirected to.
type Provider interface {
	Initiate(ctx context.Context, txn *entity.Transaction) (string, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(ctx context.Context, txn *entity.Transaction) (string, error)

func (f ProviderFunc) Initiate(ctx context.Context, txn *entity.Transaction) (string, error) {
	return f(ctx, txn)
}
