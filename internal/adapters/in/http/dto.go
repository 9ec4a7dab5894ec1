package http

import (
	"time"

	"commandes/internal/core/application/usecases/queries"
	"commandes/internal/core/domain/model/kernel"
	"commandes/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderLineRequest is one requested catalog item.
type OrderLineRequest struct {
	VendorID string `json:"vendor_id"`
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// CreateOrderRequest is the body of POST /orders.
type CreateOrderRequest struct {
	Price       decimal.Decimal    `json:"price"`
	DeliveryFee decimal.Decimal    `json:"delivery_fee"`
	Location    string             `json:"location"`
	Phone       string             `json:"phone"`
	Capture     string             `json:"capture"`
	Items       []OrderLineRequest `json:"items"`
}

// ChangeStatusRequest is the body of both status endpoints.
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// UpdateLangRequest is the body of PUT /me/lang.
type UpdateLangRequest struct {
	Lang string `json:"lang"`
}

// DeviceTokenRequest is the body of PUT /me/device-token.
type DeviceTokenRequest struct {
	Token string `json:"token"`
}

type OrderItemResponse struct {
	VendorID string `json:"vendor_id"`
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

type OrderResponse struct {
	ID          string              `json:"id"`
	Code        string              `json:"code"`
	Status      string              `json:"status"`
	Terminal    bool                `json:"terminal"`
	Price       decimal.Decimal     `json:"price"`
	DeliveryFee decimal.Decimal     `json:"delivery_fee"`
	Total       decimal.Decimal     `json:"total"`
	Location    string              `json:"location"`
	Phone       string              `json:"phone"`
	Capture     string              `json:"capture,omitempty"`
	OwnerID     string              `json:"owner_id"`
	CourierID   *string             `json:"courier_id"`
	CreatedAt   time.Time           `json:"created_at"`
	Items       []OrderItemResponse `json:"items,omitempty"`
}

// PendingOrdersResponse is the staff board.
type PendingOrdersResponse struct {
	Paid    []OrderResponse `json:"paid"`
	Loading []OrderResponse `json:"loading"`
}

// ReviewBoardResponse is the second staff board.
type ReviewBoardResponse struct {
	Waiting   []OrderResponse `json:"waiting"`
	Delivered []OrderResponse `json:"delivered"`
}

// UserRoleResponse answers a role toggle.
type UserRoleResponse struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

// CourierBoardResponse is the courier board.
type CourierBoardResponse struct {
	Paid    []OrderResponse `json:"paid"`
	Loading []OrderResponse `json:"loading"`
}

// StatisticsResponse maps statuses and roles to counts.
type StatisticsResponse struct {
	Orders map[string]int64 `json:"orders"`
	Users  map[string]int64 `json:"users,omitempty"`
}

func courierString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func orderResponse(o *order.Order) OrderResponse {
	details := o.Details()
	items := make([]OrderItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemResponse{
			VendorID: item.VendorID().String(),
			ItemID:   item.ItemID().String(),
			Quantity: item.Quantity(),
		})
	}

	return OrderResponse{
		ID:          o.ID().String(),
		Code:        o.Code().String(),
		Status:      o.Status().String(),
		Terminal:    o.Status().IsTerminal(),
		Price:       details.Price,
		DeliveryFee: details.DeliveryFee,
		Total:       o.Total(),
		Location:    details.Location,
		Phone:       details.Phone,
		Capture:     details.Capture,
		OwnerID:     o.Owner().String(),
		CourierID:   courierString(o.Courier()),
		CreatedAt:   o.CreatedAt(),
		Items:       items,
	}
}

func summaryResponses(summaries []queries.OrderSummary) []OrderResponse {
	response := make([]OrderResponse, len(summaries))
	for i, s := range summaries {
		response[i] = OrderResponse{
			ID:          s.ID.String(),
			Code:        s.Code.String(),
			Status:      s.Status.String(),
			Terminal:    s.Status.IsTerminal(),
			Price:       s.Price,
			DeliveryFee: s.DeliveryFee,
			Total:       s.Price.Add(s.DeliveryFee),
			Location:    s.Location,
			Phone:       s.Phone,
			Capture:     s.Capture,
			OwnerID:     s.OwnerID.String(),
			CourierID:   courierString(s.CourierID),
			CreatedAt:   s.CreatedAt,
		}
	}
	return response
}

func statisticsResponse(stats queries.GetStatisticsQueryResponse) StatisticsResponse {
	response := StatisticsResponse{Orders: make(map[string]int64, len(stats.OrdersByStatus))}
	for status, total := range stats.OrdersByStatus {
		response.Orders[status.String()] = total
	}
	if stats.UsersByRole != nil {
		response.Users = make(map[string]int64, len(stats.UsersByRole))
		for role, total := range stats.UsersByRole {
			response.Users[role.String()] = total
		}
	}
	return response
}
