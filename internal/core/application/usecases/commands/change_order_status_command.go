package commands

import (
	"errors"

	"commandes/internal/core/domain/model/kernel"
	"commandes/internal/core/domain/model/order"
	"commandes/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand requests moving an order to a new status.
//
// The mode decides which targets are accepted: staff use
// order.Administrative, couriers use order.Courier. The actor becomes the
// order's courier when a courier sets loading.
//
// Example:
//
//	cmd, err := NewChangeOrderStatusCommand(orderID, courierID, order.Loading, order.Courier)
//	if err != nil {
//	    return err
//	}
//	updated, err := handler.Handle(ctx, cmd)
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID
	target  order.Status
	mode    order.TransitionMode
	notify  bool

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand validates identifiers, target and mode.
// Whether the target is allowed in mode is checked by the order itself.
func NewChangeOrderStatusCommand(
	orderID, actorID kernel.UUID,
	target order.Status,
	mode order.TransitionMode,
) (ChangeOrderStatusCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		actorID.Validate(),
		target.Validate(),
		mode.Validate(),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return ChangeOrderStatusCommand{
		orderID: orderID,
		actorID: actorID,
		target:  target,
		mode:    mode,
		notify:  true,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// WithoutNotification returns a copy of the command that skips notifying
// the order owner.
func (c ChangeOrderStatusCommand) WithoutNotification() ChangeOrderStatusCommand {
	c.notify = false
	return c
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) OrderID() kernel.UUID       { return c.orderID }
func (c ChangeOrderStatusCommand) ActorID() kernel.UUID       { return c.actorID }
func (c ChangeOrderStatusCommand) Target() order.Status       { return c.target }
func (c ChangeOrderStatusCommand) Mode() order.TransitionMode { return c.mode }
func (c ChangeOrderStatusCommand) Notify() bool               { return c.notify }
