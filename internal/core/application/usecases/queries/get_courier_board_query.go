package queries

import (
	"errors"

	"commandes/internal/core/domain/model/kernel"
	"commandes/internal/pkg/guard"
)

var ErrGetCourierBoardQueryIsNotConstructed = errors.New(
	"GetCourierBoardQuery must be created via NewGetCourierBoardQuery constructor",
)

// GetCourierBoardQuery lists what a courier can pick up and what they carry.
type GetCourierBoardQuery struct {
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCourierBoardQuery creates the query for courierID.
func NewGetCourierBoardQuery(courierID kernel.UUID) (GetCourierBoardQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetCourierBoardQuery{}, err
	}
	return GetCourierBoardQuery{courierID: courierID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCourierBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierBoardQueryIsNotConstructed)
}

// CourierID returns the courier the board is built for.
func (q GetCourierBoardQuery) CourierID() kernel.UUID {
	return q.courierID
}

// GetCourierBoardQueryResponse splits the board in two columns.
type GetCourierBoardQueryResponse struct {
	// Available are paid orders nobody claimed yet.
	Available []OrderSummary
	// Mine are loading orders claimed by the courier.
	Mine []OrderSummary
}
