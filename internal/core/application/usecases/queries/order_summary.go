// Package queries contains read operations served straight from the database.
// Handlers issue raw SQL through GORM and return flat response structs; they
// never load aggregates.
package queries

import (
	"context"
	"time"

	"commandes/internal/core/domain/model/kernel"
	"commandes/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderSummary is the order projection shared by the listing queries.
type OrderSummary struct {
	ID          kernel.UUID
	Code        order.Code
	Status      order.Status
	Price       decimal.Decimal
	DeliveryFee decimal.Decimal
	Location    string
	Phone       string
	Capture     string
	OwnerID     kernel.UUID
	CourierID   *kernel.UUID
	CreatedAt   time.Time
}

const selectOrderSummaries = `
	SELECT
		id,
		code,
		status,
		price,
		delivery_fee,
		location,
		phone,
		COALESCE(capture, ''),
		owner_id,
		courier_id,
		created_at
	FROM orders
`

// listOrderSummaries runs selectOrderSummaries followed by filter, newest first.
func listOrderSummaries(ctx context.Context, db *gorm.DB, filter string, args ...any) ([]OrderSummary, error) {
	summaries := make([]OrderSummary, 0)

	rows, err := db.WithContext(ctx).Raw(selectOrderSummaries+filter+" ORDER BY created_at DESC, id", args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			summary      OrderSummary
			id, ownerID  uuid.UUID
			courierID    uuid.NullUUID
			code, status string
		)

		err = rows.Scan(
			&id,
			&code,
			&status,
			&summary.Price,
			&summary.DeliveryFee,
			&summary.Location,
			&summary.Phone,
			&summary.Capture,
			&ownerID,
			&courierID,
			&summary.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if summary.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if summary.OwnerID, err = kernel.UUIDFromBytes(ownerID[:]); err != nil {
			return nil, err
		}
		if courierID.Valid {
			cID, courierErr := kernel.UUIDFromBytes(courierID.UUID[:])
			if courierErr != nil {
				return nil, courierErr
			}
			summary.CourierID = &cID
		}
		summary.Code = order.Code(code)
		summary.Status = order.Status(status)

		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
