// Package notifications sends push notifications about orders.
//
// Delivery is best-effort and at-most-once: no retry, no queue and no record
// of failed sends. Per-recipient failures are logged and reported, never
// returned as errors, so a dead device token can not fail an order write.
package notifications

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"commandes/internal/core/domain/model/kernel"
	"commandes/internal/core/domain/model/order"
	"commandes/internal/core/domain/model/user"
	"commandes/internal/core/domain/services"
	"commandes/internal/core/ports"
	"commandes/internal/pkg/metrics"

	"golang.org/x/sync/errgroup"
)

const (
	DefaultSendTimeout = 5 * time.Second
	DefaultConcurrency = 4
)

const (
	kindStatusChange = "status_change"
	kindNewOrder     = "new_order"
)

// Recipients looks up who a notification goes to.
type Recipients interface {
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)
	ListByRoles(ctx context.Context, roles ...user.Role) ([]*user.User, error)
}

// Outcome is what happened to a single send.
type Outcome string

const (
	Sent                Outcome = "sent"
	SkippedNoToken      Outcome = "skipped_no_token"
	SkippedUnregistered Outcome = "skipped_unregistered"
	Failed              Outcome = "failed"
)

// Delivery is the result of notifying one user.
type Delivery struct {
	UserID  kernel.UUID
	Outcome Outcome
	// Err is set when Outcome is Failed.
	Err error
}

// Report lists one Delivery per recipient.
type Report struct {
	Deliveries []Delivery
}

// Count returns how many deliveries ended with outcome.
func (r Report) Count(outcome Outcome) int {
	n := 0
	for _, d := range r.Deliveries {
		if d.Outcome == outcome {
			n++
		}
	}
	return n
}

// Config tunes the dispatcher. Zero values select the defaults.
type Config struct {
	// SendTimeout bounds each gateway call.
	SendTimeout time.Duration
	// Concurrency caps parallel sends when notifying staff.
	Concurrency int
}

// Dispatcher composes and sends order notifications.
type Dispatcher struct {
	recipients  Recipients
	gateway     ports.NotificationGateway
	logger      *slog.Logger
	sendTimeout time.Duration
	concurrency int
}

// NewDispatcher creates a Dispatcher.
func NewDispatcher(
	recipients Recipients,
	gateway ports.NotificationGateway,
	logger *slog.Logger,
	cfg Config,
) *Dispatcher {
	if cfg.SendTimeout <= 0 {
		cfg.SendTimeout = DefaultSendTimeout
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = DefaultConcurrency
	}

	return &Dispatcher{
		recipients:  recipients,
		gateway:     gateway,
		logger:      logger.With("component", "notification_dispatcher"),
		sendTimeout: cfg.SendTimeout,
		concurrency: cfg.Concurrency,
	}
}

// NotifyStatusChange tells the owner of o that its status changed. The text
// is localized in the owner's language.
//
// An error is returned only when the message could not be composed: the
// owner could not be loaded or the status has no text
// (services.ErrUnknownStatus). Send failures are part of the Report.
func (d *Dispatcher) NotifyStatusChange(ctx context.Context, o *order.Order) (Report, error) {
	owner, err := d.recipients.Get(ctx, o.Owner())
	if err != nil {
		return Report{}, err
	}

	text, err := services.ResolveStatusText(o.Status(), owner.DefaultLang())
	if err != nil {
		return Report{}, err
	}

	msg := ports.Message{
		Title: text.Title,
		Body:  text.Body(o.Code()),
		Data:  orderData(o),
	}

	return Report{
		Deliveries: []Delivery{d.send(ctx, kindStatusChange, owner, msg)},
	}, nil
}

// NotifyAdminsNewOrder tells every admin and super admin that o was placed.
// The same message, localized in creatorLang, goes to all of them; staff
// members' own language settings are not consulted.
//
// Sends run in parallel up to the configured concurrency. Having no staff is
// not an error.
func (d *Dispatcher) NotifyAdminsNewOrder(ctx context.Context, o *order.Order, creatorLang user.Lang) (Report, error) {
	staff, err := d.recipients.ListByRoles(ctx, user.StaffRoles()...)
	if err != nil {
		return Report{}, err
	}

	text := services.NewOrderText(o, creatorLang)
	msg := ports.Message{
		Title: text.Title,
		Body:  text.Body,
		Data:  orderData(o),
	}

	deliveries := make([]Delivery, len(staff))

	var g errgroup.Group
	g.SetLimit(d.concurrency)
	for i, admin := range staff {
		g.Go(func() error {
			deliveries[i] = d.send(ctx, kindNewOrder, admin, msg)
			return nil
		})
	}
	_ = g.Wait()

	return Report{Deliveries: deliveries}, nil
}

func (d *Dispatcher) send(ctx context.Context, kind string, to *user.User, msg ports.Message) Delivery {
	delivery := Delivery{UserID: to.ID()}
	logger := d.logger.With("kind", kind, "user_id", to.ID().String())

	defer func() {
		metrics.Notifications.WithLabelValues(kind, string(delivery.Outcome)).Inc()
	}()

	if !to.HasDeviceToken() {
		logger.DebugContext(ctx, "no device token, notification skipped")
		delivery.Outcome = SkippedNoToken
		return delivery
	}

	msg.Token = to.DeviceToken()

	sendCtx, cancel := context.WithTimeout(ctx, d.sendTimeout)
	defer cancel()

	start := time.Now()
	err := d.gateway.Send(sendCtx, msg)
	metrics.ObserveNotificationSend(start)

	switch {
	case err == nil:
		delivery.Outcome = Sent
	case errors.Is(err, ports.ErrDeviceTokenUnregistered):
		logger.DebugContext(ctx, "device token unregistered, notification skipped")
		delivery.Outcome = SkippedUnregistered
	default:
		logger.WarnContext(ctx, "failed to send notification", "error", err)
		delivery.Outcome = Failed
		delivery.Err = err
	}

	return delivery
}

func orderData(o *order.Order) map[string]string {
	return map[string]string{
		"order_id": o.ID().String(),
		"code":     o.Code().String(),
		"status":   o.Status().String(),
	}
}
