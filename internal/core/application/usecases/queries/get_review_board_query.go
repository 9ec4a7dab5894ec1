package queries

import (
	"errors"

	"commandes/internal/pkg/guard"
)

var ErrGetReviewBoardQueryIsNotConstructed = errors.New(
	"GetReviewBoardQuery must be created via NewGetReviewBoardQuery constructor",
)

// GetReviewBoardQuery lists the orders awaiting payment review next to the
// delivered ones, the second staff board.
type GetReviewBoardQuery struct {
	guard guard.ConstructorGuard
}

func NewGetReviewBoardQuery() GetReviewBoardQuery {
	return GetReviewBoardQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetReviewBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetReviewBoardQueryIsNotConstructed)
}

type GetReviewBoardQueryResponse struct {
	Waiting   []OrderSummary
	Delivered []OrderSummary
}
