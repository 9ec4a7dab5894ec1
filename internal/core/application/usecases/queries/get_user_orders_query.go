package queries

import (
	"context"
	"errors"

	"commandes/internal/core/domain/model/kernel"
	"commandes/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetUserOrdersQueryIsNotConstructed = errors.New(
	"GetUserOrdersQuery must be created via NewGetUserOrdersQuery constructor",
)

// GetUserOrdersQuery lists the orders a customer placed.
type GetUserOrdersQuery struct {
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUserOrdersQuery creates the query for ownerID.
func NewGetUserOrdersQuery(ownerID kernel.UUID) (GetUserOrdersQuery, error) {
	if err := ownerID.Validate(); err != nil {
		return GetUserOrdersQuery{}, err
	}
	return GetUserOrdersQuery{ownerID: ownerID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUserOrdersQueryIsNotConstructed)
}

// OwnerID returns the customer whose orders are listed.
func (q GetUserOrdersQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

// GetUserOrdersQueryHandler lists a customer's orders, newest first.
type GetUserOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUserOrdersQueryHandler creates the handler.
func NewGetUserOrdersQueryHandler(db *gorm.DB) GetUserOrdersQueryHandler {
	return GetUserOrdersQueryHandler{db: db}
}

// Handle runs the query. A customer without orders gets an empty slice.
func (h GetUserOrdersQueryHandler) Handle(ctx context.Context, query GetUserOrdersQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return listOrderSummaries(ctx, h.db, "WHERE owner_id = ?", query.OwnerID().Bytes())
}
