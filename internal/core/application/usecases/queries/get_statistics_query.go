package queries

import (
	"errors"

	"commandes/internal/core/domain/model/kernel"
	"commandes/internal/core/domain/model/order"
	"commandes/internal/core/domain/model/user"
	"commandes/internal/pkg/guard"
)

var ErrGetStatisticsQueryIsNotConstructed = errors.New(
	"GetStatisticsQuery must be created via NewGetStatisticsQuery or NewGetCourierStatisticsQuery",
)

// GetStatisticsQuery counts orders per status, either over the whole shop
// or over the orders of one courier.
type GetStatisticsQuery struct {
	courierID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetStatisticsQuery counts every order and every user.
func NewGetStatisticsQuery() GetStatisticsQuery {
	return GetStatisticsQuery{guard: guard.NewConstructorGuard()}
}

// NewGetCourierStatisticsQuery only counts orders carried by courierID.
// Users are not counted.
func NewGetCourierStatisticsQuery(courierID kernel.UUID) (GetStatisticsQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetStatisticsQuery{}, err
	}
	return GetStatisticsQuery{courierID: &courierID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetStatisticsQueryIsNotConstructed)
}

// CourierID returns the courier scope, nil for the global statistics.
func (q GetStatisticsQuery) CourierID() *kernel.UUID {
	return q.courierID
}

// GetStatisticsQueryResponse holds a count for every status, zero included.
type GetStatisticsQueryResponse struct {
	OrdersByStatus map[order.Status]int64
	// UsersByRole is nil for courier scoped statistics.
	UsersByRole map[user.Role]int64
}
