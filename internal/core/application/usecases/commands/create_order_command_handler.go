package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"commandes/internal/core/application/notifications"
	"commandes/internal/core/domain/model/kernel"
	"commandes/internal/core/domain/model/order"
	"commandes/internal/core/domain/model/user"
	"commandes/internal/core/ports"
	"commandes/internal/pkg/errs"
	"commandes/internal/pkg/metrics"
)

// maxCodeAttempts bounds how many codes are drawn when the store reports a
// collision. With 2^32 codes a second collision in a row is already unlikely.
const maxCodeAttempts = 3

// ErrItemNotSoldByVendor is returned when a line references an item of another vendor.
var ErrItemNotSoldByVendor = errors.New("item is not sold by vendor")

// CreateOrderCommandHandler places orders.
//
// The owner and every catalog reference are checked, then the order and its
// items are inserted in one transaction. After commit every admin and super
// admin is notified in the creator's language.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	notifier   NewOrderNotifier
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	notifier NewOrderNotifier,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "create_order"),
	}
}

// Handle returns the created order in status waiting.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	lines := cmd.Lines()
	items := make([]order.Item, 0, len(lines))
	for _, line := range lines {
		item, err := order.NewItem(line.VendorID, line.ItemID, line.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	o, err := order.NewOrder(kernel.NewUUID(), cmd.OwnerID(), order.Details{
		Price:       cmd.Price(),
		DeliveryFee: cmd.DeliveryFee(),
		Location:    cmd.Location(),
		Phone:       cmd.Phone(),
		Capture:     cmd.Capture(),
	}, items)
	if err != nil {
		return nil, err
	}

	var creator *user.User
	for attempt := 1; ; attempt++ {
		creator, err = h.persist(ctx, o)
		if errors.Is(err, ports.ErrDuplicateOrderCode) && attempt < maxCodeAttempts {
			h.logger.WarnContext(ctx, "order code collision, drawing a new one",
				"code", o.Code().String(), "attempt", attempt)
			o.RegenerateCode()
			continue
		}
		if err != nil {
			return nil, err
		}
		break
	}

	metrics.OrdersCreated.Inc()
	h.logger.InfoContext(ctx, "order created",
		"order_id", o.ID().String(), "code", o.Code().String(), "owner_id", o.Owner().String())

	h.notify(context.WithoutCancel(ctx), o, creator.DefaultLang())

	return o, nil
}

func (h CreateOrderCommandHandler) persist(ctx context.Context, o *order.Order) (*user.User, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	creator, err := uow.UserRepository().Get(ctx, o.Owner())
	if err != nil {
		return nil, err
	}

	catalogRepo := uow.CatalogRepository()
	for i, item := range o.Items() {
		catalogItem, err := catalogRepo.GetItem(ctx, item.ItemID())
		if err != nil {
			return nil, err
		}
		if !catalogItem.BelongsTo(item.VendorID()) {
			return nil, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d]", i),
				fmt.Errorf("%w: %s, %s", ErrItemNotSoldByVendor, item.ItemID(), item.VendorID()))
		}
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return creator, nil
}

func (h CreateOrderCommandHandler) notify(ctx context.Context, o *order.Order, creatorLang user.Lang) {
	report, err := h.notifier.NotifyAdminsNewOrder(ctx, o, creatorLang)
	if err != nil {
		h.logger.ErrorContext(ctx, "new order notification not sent",
			"order_id", o.ID().String(), "error", err)
		return
	}

	h.logger.DebugContext(ctx, "new order notification",
		"order_id", o.ID().String(),
		"recipients", len(report.Deliveries),
		"sent", report.Count(notifications.Sent),
	)
}
