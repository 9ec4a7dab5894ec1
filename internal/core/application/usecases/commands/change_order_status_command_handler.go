package commands

import (
	"context"
	"log/slog"

	"commandes/internal/core/domain/model/order"
	"commandes/internal/pkg/metrics"
)

// ChangeOrderStatusCommandHandler applies status changes.
//
// The order is loaded, changed and saved in one transaction. The owner is
// notified after commit; notification problems are logged and never fail
// the command, the status change stays committed.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   StatusChangeNotifier
	logger     *slog.Logger
}

// NewChangeOrderStatusCommandHandler creates a handler for status changes.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	notifier StatusChangeNotifier,
	logger *slog.Logger,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "change_order_status"),
	}
}

// Handle returns the updated order. A missing order yields an error
// wrapping errs.ErrObjectNotFound, a target outside the mode's whitelist one
// wrapping order.ErrInvalidStatus. Nothing is written in either case.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.ChangeStatus(cmd.Target(), cmd.Mode(), cmd.ActorID()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	metrics.StatusChanges.WithLabelValues(cmd.Mode().String(), cmd.Target().String()).Inc()
	h.logger.InfoContext(ctx, "order status changed",
		"order_id", o.ID().String(),
		"status", o.Status().String(),
		"mode", cmd.Mode().String(),
		"actor_id", cmd.ActorID().String(),
	)

	if cmd.Notify() {
		h.notify(context.WithoutCancel(ctx), o)
	}

	return o, nil
}

func (h ChangeOrderStatusCommandHandler) notify(ctx context.Context, o *order.Order) {
	report, err := h.notifier.NotifyStatusChange(ctx, o)
	if err != nil {
		h.logger.ErrorContext(ctx, "status change notification not sent",
			"order_id", o.ID().String(), "error", err)
		return
	}

	for _, d := range report.Deliveries {
		h.logger.DebugContext(ctx, "status change notification",
			"order_id", o.ID().String(), "user_id", d.UserID.String(), "outcome", string(d.Outcome))
	}
}
