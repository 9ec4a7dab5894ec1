// Package http exposes the order service over REST with Echo.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"commandes/internal/core/application/usecases/commands"
	"commandes/internal/core/application/usecases/queries"
	"commandes/internal/core/domain/model/kernel"
	"commandes/internal/core/domain/model/order"
	"commandes/internal/core/domain/model/user"
	"commandes/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// Use case ports the server depends on. The command and query handlers
// satisfy them.
type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}
	ChangeOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) (*order.Order, error)
	}
	UpdateDefaultLangHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateDefaultLangCommand) error
	}
	UpdateDeviceTokenHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateDeviceTokenCommand) error
	}
	ToggleCourierRoleHandler interface {
		Handle(ctx context.Context, cmd commands.ToggleCourierRoleCommand) (*user.User, error)
	}
	PendingOrdersHandler interface {
		Handle(ctx context.Context, q queries.GetPendingOrdersQuery) (queries.GetPendingOrdersQueryResponse, error)
	}
	ReviewBoardHandler interface {
		Handle(ctx context.Context, q queries.GetReviewBoardQuery) (queries.GetReviewBoardQueryResponse, error)
	}
	CourierBoardHandler interface {
		Handle(ctx context.Context, q queries.GetCourierBoardQuery) (queries.GetCourierBoardQueryResponse, error)
	}
	UserOrdersHandler interface {
		Handle(ctx context.Context, q queries.GetUserOrdersQuery) ([]queries.OrderSummary, error)
	}
	StatisticsHandler interface {
		Handle(ctx context.Context, q queries.GetStatisticsQuery) (queries.GetStatisticsQueryResponse, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateOrder       CreateOrderHandler
	ChangeOrderStatus ChangeOrderStatusHandler
	UpdateDefaultLang UpdateDefaultLangHandler
	UpdateDeviceToken UpdateDeviceTokenHandler
	ToggleCourierRole ToggleCourierRoleHandler
	PendingOrders     PendingOrdersHandler
	ReviewBoard       ReviewBoardHandler
	CourierBoard      CourierBoardHandler
	UserOrders        UserOrdersHandler
	Statistics        StatisticsHandler
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	handlers Handlers
	auth     *Authenticator
	logger   *slog.Logger
}

// NewServer creates a server over the given use cases.
func NewServer(handlers Handlers, auth *Authenticator, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		auth:     auth,
		logger:   logger.With("component", "http_server"),
	}
}

// Register mounts every route on e.
func (s *Server) Register(e *echo.Echo) {
	e.Use(RequestMetrics())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	api := e.Group("/api/v1", s.auth.Middleware())

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/mine", s.GetMyOrders)
	api.GET("/orders/pending", s.GetPendingOrders, RequireStaff())
	api.GET("/orders/review", s.GetReviewBoard, RequireStaff())
	api.GET("/orders/courier", s.GetCourierBoard, RequireMode(order.Courier))
	api.POST("/orders/:id/status", s.ChangeStatus, RequireMode(order.Administrative))
	api.POST("/orders/:id/status/courier", s.ChangeStatusAsCourier, RequireMode(order.Courier))
	api.GET("/stats", s.GetStatistics)

	api.POST("/users/:id/courier-role", s.ToggleCourierRole, RequireStaff())

	api.PUT("/me/lang", s.UpdateLang)
	api.PUT("/me/device-token", s.UpdateDeviceToken)
	api.DELETE("/me/device-token", s.ClearDeviceToken)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	principal, _ := principalFrom(c)

	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid request body")
	}

	lines := make([]commands.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		vendorID, err := kernel.UUIDFromString(item.VendorID)
		if err != nil {
			return writeError(c, http.StatusBadRequest, "invalid vendor_id: "+err.Error())
		}
		itemID, err := kernel.UUIDFromString(item.ItemID)
		if err != nil {
			return writeError(c, http.StatusBadRequest, "invalid item_id: "+err.Error())
		}
		lines = append(lines, commands.OrderLine{VendorID: vendorID, ItemID: itemID, Quantity: item.Quantity})
	}

	cmd, err := commands.NewCreateOrderCommand(
		principal.UserID, req.Price, req.DeliveryFee, req.Location, req.Phone, req.Capture, lines,
	)
	if err != nil {
		return writeError(c, http.StatusBadRequest, "invalid order data: "+err.Error())
	}

	created, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeAppError(c, err)
	}

	return c.JSON(http.StatusCreated, orderResponse(created))
}

// ChangeStatus handles POST /api/v1/orders/:id/status. Staff may pass
// notify=false to skip the owner notification.
func (s *Server) ChangeStatus(c echo.Context) error {
	return s.changeStatus(c, order.Administrative)
}

// ChangeStatusAsCourier handles POST /api/v1/orders/:id/status/courier.
func (s *Server) ChangeStatusAsCourier(c echo.Context) error {
	return s.changeStatus(c, order.Courier)
}

func (s *Server) changeStatus(c echo.Context, mode order.TransitionMode) error {
	principal, _ := principalFrom(c)

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, "invalid order id")
	}

	var req ChangeStatusRequest
	if err = c.Bind(&req); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, principal.UserID, order.Status(req.Status), mode)
	if err != nil {
		return s.writeStatusChangeError(c, mode, err)
	}
	if mode == order.Administrative {
		if notify, parseErr := strconv.ParseBool(c.QueryParam("notify")); parseErr == nil && !notify {
			cmd = cmd.WithoutNotification()
		}
	}

	updated, err := s.handlers.ChangeOrderStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeStatusChangeError(c, mode, err)
	}

	return c.JSON(http.StatusOK, orderResponse(updated))
}

// GetMyOrders handles GET /api/v1/orders/mine.
func (s *Server) GetMyOrders(c echo.Context) error {
	principal, _ := principalFrom(c)

	query, err := queries.NewGetUserOrdersQuery(principal.UserID)
	if err != nil {
		return writeError(c, http.StatusBadRequest, err.Error())
	}

	orders, err := s.handlers.UserOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeAppError(c, err)
	}

	return c.JSON(http.StatusOK, summaryResponses(orders))
}

// GetPendingOrders handles GET /api/v1/orders/pending.
func (s *Server) GetPendingOrders(c echo.Context) error {
	pending, err := s.handlers.PendingOrders.Handle(c.Request().Context(), queries.NewGetPendingOrdersQuery())
	if err != nil {
		return s.writeAppError(c, err)
	}

	return c.JSON(http.StatusOK, PendingOrdersResponse{
		Paid:    summaryResponses(pending.Paid),
		Loading: summaryResponses(pending.Loading),
	})
}

// GetReviewBoard handles GET /api/v1/orders/review.
func (s *Server) GetReviewBoard(c echo.Context) error {
	board, err := s.handlers.ReviewBoard.Handle(c.Request().Context(), queries.NewGetReviewBoardQuery())
	if err != nil {
		return s.writeAppError(c, err)
	}

	return c.JSON(http.StatusOK, ReviewBoardResponse{
		Waiting:   summaryResponses(board.Waiting),
		Delivered: summaryResponses(board.Delivered),
	})
}

// GetCourierBoard handles GET /api/v1/orders/courier.
func (s *Server) GetCourierBoard(c echo.Context) error {
	principal, _ := principalFrom(c)

	query, err := queries.NewGetCourierBoardQuery(principal.UserID)
	if err != nil {
		return writeError(c, http.StatusBadRequest, err.Error())
	}

	board, err := s.handlers.CourierBoard.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeAppError(c, err)
	}

	return c.JSON(http.StatusOK, CourierBoardResponse{
		Paid:    summaryResponses(board.Available),
		Loading: summaryResponses(board.Mine),
	})
}

// GetStatistics handles GET /api/v1/stats. Staff get global counters,
// couriers get their own.
func (s *Server) GetStatistics(c echo.Context) error {
	principal, _ := principalFrom(c)

	var query queries.GetStatisticsQuery
	switch {
	case principal.Role.IsStaff():
		query = queries.NewGetStatisticsQuery()
	case principal.Role == user.Traitor:
		var err error
		if query, err = queries.NewGetCourierStatisticsQuery(principal.UserID); err != nil {
			return writeError(c, http.StatusBadRequest, err.Error())
		}
	default:
		return writeError(c, http.StatusForbidden, "role not allowed")
	}

	stats, err := s.handlers.Statistics.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeAppError(c, err)
	}

	return c.JSON(http.StatusOK, statisticsResponse(stats))
}

// ToggleCourierRole handles POST /api/v1/users/:id/courier-role.
func (s *Server) ToggleCourierRole(c echo.Context) error {
	userID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, "invalid user id")
	}

	cmd, err := commands.NewToggleCourierRoleCommand(userID)
	if err != nil {
		return writeError(c, http.StatusBadRequest, err.Error())
	}

	u, err := s.handlers.ToggleCourierRole.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeAppError(c, err)
	}

	return c.JSON(http.StatusOK, UserRoleResponse{ID: u.ID().String(), Role: u.Role().String()})
}

// UpdateLang handles PUT /api/v1/me/lang.
func (s *Server) UpdateLang(c echo.Context) error {
	principal, _ := principalFrom(c)

	var req UpdateLangRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewUpdateDefaultLangCommand(principal.UserID, req.Lang)
	if err != nil {
		return writeError(c, http.StatusBadRequest, err.Error())
	}

	if err = s.handlers.UpdateDefaultLang.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UpdateDeviceToken handles PUT /api/v1/me/device-token, called after login.
func (s *Server) UpdateDeviceToken(c echo.Context) error {
	principal, _ := principalFrom(c)

	var req DeviceTokenRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewUpdateDeviceTokenCommand(principal.UserID, req.Token)
	if err != nil {
		return writeError(c, http.StatusBadRequest, err.Error())
	}

	return s.updateDeviceToken(c, cmd)
}

// ClearDeviceToken handles DELETE /api/v1/me/device-token, called on logout.
func (s *Server) ClearDeviceToken(c echo.Context) error {
	principal, _ := principalFrom(c)

	cmd, err := commands.NewClearDeviceTokenCommand(principal.UserID)
	if err != nil {
		return writeError(c, http.StatusBadRequest, err.Error())
	}

	return s.updateDeviceToken(c, cmd)
}

func (s *Server) updateDeviceToken(c echo.Context, cmd commands.UpdateDeviceTokenCommand) error {
	if err := s.handlers.UpdateDeviceToken.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeAppError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
