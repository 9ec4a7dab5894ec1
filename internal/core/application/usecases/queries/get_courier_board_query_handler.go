package queries

import (
	"context"

	"commandes/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetCourierBoardQueryHandler serves the courier app's home screen.
type GetCourierBoardQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierBoardQueryHandler creates the handler.
func NewGetCourierBoardQueryHandler(db *gorm.DB) GetCourierBoardQueryHandler {
	return GetCourierBoardQueryHandler{db: db}
}

// Handle returns unclaimed paid orders and the courier's own loading orders.
func (h GetCourierBoardQueryHandler) Handle(
	ctx context.Context,
	query GetCourierBoardQuery,
) (GetCourierBoardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCourierBoardQueryResponse{}, err
	}

	available, err := listOrderSummaries(ctx, h.db, "WHERE status = ? AND courier_id IS NULL", order.Paid)
	if err != nil {
		return GetCourierBoardQueryResponse{}, err
	}

	mine, err := listOrderSummaries(ctx, h.db, "WHERE status = ? AND courier_id = ?",
		order.Loading, query.CourierID().Bytes())
	if err != nil {
		return GetCourierBoardQueryResponse{}, err
	}

	return GetCourierBoardQueryResponse{Available: available, Mine: mine}, nil
}
