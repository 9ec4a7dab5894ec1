package queries

import (
	"context"

	"commandes/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type GetReviewBoardQueryHandler struct {
	db *gorm.DB
}

func NewGetReviewBoardQueryHandler(db *gorm.DB) GetReviewBoardQueryHandler {
	return GetReviewBoardQueryHandler{db: db}
}

// Handle returns every waiting and every delivered order, newest first.
func (h GetReviewBoardQueryHandler) Handle(
	ctx context.Context,
	query GetReviewBoardQuery,
) (GetReviewBoardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetReviewBoardQueryResponse{}, err
	}

	waiting, err := listOrderSummaries(ctx, h.db, "WHERE status = ?", order.Waiting)
	if err != nil {
		return GetReviewBoardQueryResponse{}, err
	}

	delivered, err := listOrderSummaries(ctx, h.db, "WHERE status = ?", order.Delivered)
	if err != nil {
		return GetReviewBoardQueryResponse{}, err
	}

	return GetReviewBoardQueryResponse{Waiting: waiting, Delivered: delivered}, nil
}
