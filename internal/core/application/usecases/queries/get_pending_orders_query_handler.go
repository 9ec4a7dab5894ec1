package queries

import (
	"context"

	"commandes/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetPendingOrdersQueryHandler serves the staff board.
type GetPendingOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingOrdersQueryHandler creates the handler.
func NewGetPendingOrdersQueryHandler(db *gorm.DB) GetPendingOrdersQueryHandler {
	return GetPendingOrdersQueryHandler{db: db}
}

// Handle returns every paid and every loading order, newest first.
func (h GetPendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPendingOrdersQuery,
) (GetPendingOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPendingOrdersQueryResponse{}, err
	}

	paid, err := listOrderSummaries(ctx, h.db, "WHERE status = ?", order.Paid)
	if err != nil {
		return GetPendingOrdersQueryResponse{}, err
	}

	loading, err := listOrderSummaries(ctx, h.db, "WHERE status = ?", order.Loading)
	if err != nil {
		return GetPendingOrdersQueryResponse{}, err
	}

	return GetPendingOrdersQueryResponse{Paid: paid, Loading: loading}, nil
}
