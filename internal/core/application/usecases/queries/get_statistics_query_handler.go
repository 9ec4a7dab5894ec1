package queries

import (
	"context"

	"commandes/internal/core/domain/model/order"
	"commandes/internal/core/domain/model/user"

	"gorm.io/gorm"
)

// GetStatisticsQueryHandler aggregates counters for the dashboards and the
// orders_by_status gauge.
type GetStatisticsQueryHandler struct {
	db *gorm.DB
}

// NewGetStatisticsQueryHandler creates the handler.
func NewGetStatisticsQueryHandler(db *gorm.DB) GetStatisticsQueryHandler {
	return GetStatisticsQueryHandler{db: db}
}

type countRow struct {
	Name  string
	Total int64
}

// Handle runs one grouped count per table.
func (h GetStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetStatisticsQuery,
) (GetStatisticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStatisticsQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)

	var orderRows []countRow
	if courierID := query.CourierID(); courierID != nil {
		err := db.Raw(`
			SELECT status AS name, COUNT(*) AS total
			FROM orders
			WHERE courier_id = ?
			GROUP BY status
		`, courierID.Bytes()).Scan(&orderRows).Error
		if err != nil {
			return GetStatisticsQueryResponse{}, err
		}
	} else {
		err := db.Raw(`
			SELECT status AS name, COUNT(*) AS total
			FROM orders
			GROUP BY status
		`).Scan(&orderRows).Error
		if err != nil {
			return GetStatisticsQueryResponse{}, err
		}
	}

	response := GetStatisticsQueryResponse{
		OrdersByStatus: make(map[order.Status]int64, len(order.Statuses())),
	}
	for _, s := range order.Statuses() {
		response.OrdersByStatus[s] = 0
	}
	for _, row := range orderRows {
		response.OrdersByStatus[order.Status(row.Name)] = row.Total
	}

	if query.CourierID() != nil {
		return response, nil
	}

	var userRows []countRow
	err := db.Raw(`
		SELECT type AS name, COUNT(*) AS total
		FROM users
		GROUP BY type
	`).Scan(&userRows).Error
	if err != nil {
		return GetStatisticsQueryResponse{}, err
	}

	response.UsersByRole = map[user.Role]int64{
		user.Simple:     0,
		user.Traitor:    0,
		user.Admin:      0,
		user.SuperAdmin: 0,
	}
	for _, row := range userRows {
		response.UsersByRole[user.Role(row.Name)] = row.Total
	}

	return response, nil
}
