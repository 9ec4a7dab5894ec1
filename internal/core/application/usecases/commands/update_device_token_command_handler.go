package commands

import (
	"context"
)

// UpdateDeviceTokenCommandHandler stores or clears a user's push token.
type UpdateDeviceTokenCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewUpdateDeviceTokenCommandHandler creates the handler.
func NewUpdateDeviceTokenCommandHandler(uowFactory UserUoWFactory) UpdateDeviceTokenCommandHandler {
	return UpdateDeviceTokenCommandHandler{uowFactory: uowFactory}
}

// Handle loads the user, applies the token change and saves it.
func (h UpdateDeviceTokenCommandHandler) Handle(ctx context.Context, cmd UpdateDeviceTokenCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	u, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	if cmd.Clears() {
		u.ClearDeviceToken()
	} else if err = u.SetDeviceToken(cmd.Token()); err != nil {
		return err
	}

	if err = userRepo.Update(ctx, u); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
