// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// It maps the order aggregate onto the orders and order_items tables.
package orderrepo

import (
	"time"

	"commandes/internal/core/domain/model/kernel"
	"commandes/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// codeIndexName is matched against unique violations to detect code collisions.
const codeIndexName = "idx_orders_code"

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed for the status boards and the per-owner and per-courier listings.
type OrderDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Code        string          `gorm:"type:varchar(10);not null;uniqueIndex:idx_orders_code"`
	Status      string          `gorm:"type:varchar(16);not null;index"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DeliveryFee decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Location    string          `gorm:"type:text;not null"`
	Phone       string          `gorm:"type:varchar(32);not null"`
	Capture     string          `gorm:"type:text"`
	OwnerID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	CourierID   *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt   time.Time       `gorm:"not null;index"`
	Items       []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one line of an order. Rows are written once with the
// order and never updated.
type OrderItemDTO struct {
	ID       uint      `gorm:"primaryKey;autoIncrement"`
	OrderID  uuid.UUID `gorm:"type:uuid;not null;index"`
	VendorID uuid.UUID `gorm:"type:uuid;not null"`
	ItemID   uuid.UUID `gorm:"type:uuid;not null"`
	Quantity int       `gorm:"not null"`
}

// TableName specifies the database table name for order lines.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := o.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	details := o.Details()
	items := o.Items()
	itemDTOs := make([]OrderItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, OrderItemDTO{
			OrderID:  o.ID().Bytes(),
			VendorID: item.VendorID().Bytes(),
			ItemID:   item.ItemID().Bytes(),
			Quantity: item.Quantity(),
		})
	}

	return OrderDTO{
		ID:          o.ID().Bytes(),
		Code:        o.Code().String(),
		Status:      o.Status().String(),
		Price:       details.Price,
		DeliveryFee: details.DeliveryFee,
		Location:    details.Location,
		Phone:       details.Phone,
		Capture:     details.Capture,
		OwnerID:     o.Owner().Bytes(),
		CourierID:   courierID,
		CreatedAt:   o.CreatedAt(),
		Items:       itemDTOs,
	}
}

// toDomain converts a database DTO, with its items preloaded, to an order aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}

		courierID = &cID
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		vendorID, vendorErr := kernel.UUIDFromBytes(itemDTO.VendorID[:])
		if vendorErr != nil {
			return nil, vendorErr
		}
		itemID, itemErr := kernel.UUIDFromBytes(itemDTO.ItemID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		item, itemErr := order.NewItem(vendorID, itemID, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		order.Code(dto.Code),
		order.Status(dto.Status),
		ownerID,
		courierID,
		order.Details{
			Price:       dto.Price,
			DeliveryFee: dto.DeliveryFee,
			Location:    dto.Location,
			Phone:       dto.Phone,
			Capture:     dto.Capture,
		},
		items,
		dto.CreatedAt,
	)
}
