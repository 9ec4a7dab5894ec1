// Package ports defines the contracts between the order lifecycle core and
// its infrastructure: persistence, transactions and push notifications.
package ports

import (
	"context"
	"errors"

	"commandes/internal/core/domain/model/kernel"
	"commandes/internal/core/domain/model/order"
)

// ErrDuplicateOrderCode is returned by OrderRepository.Add when the order
// code is already taken. The caller may draw a new code and retry.
var ErrDuplicateOrderCode = errors.New("order code already exists")

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order together with its line items.
	// Returns ErrDuplicateOrderCode on a code collision.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status and courier changes of an existing order.
	// Line items are never rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items.
	// Returns an error wrapping errs.ErrObjectNotFound when it does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
