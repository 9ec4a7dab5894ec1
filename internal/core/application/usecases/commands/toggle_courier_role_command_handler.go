package commands

import (
	"context"
	"log/slog"

	"commandes/internal/core/domain/model/user"
)

// ToggleCourierRoleCommandHandler switches a user between simple and traitor.
type ToggleCourierRoleCommandHandler struct {
	uowFactory UserUoWFactory
	logger     *slog.Logger
}

// NewToggleCourierRoleCommandHandler creates the handler.
func NewToggleCourierRoleCommandHandler(uowFactory UserUoWFactory, logger *slog.Logger) ToggleCourierRoleCommandHandler {
	return ToggleCourierRoleCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "toggle_courier_role_handler"),
	}
}

// Handle returns the user with its new role. Staff accounts are rejected
// with an error wrapping user.ErrRoleNotToggleable.
func (h ToggleCourierRoleCommandHandler) Handle(ctx context.Context, cmd ToggleCourierRoleCommand) (*user.User, error) {
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

	userRepo := uow.UserRepository()

	u, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return nil, err
	}

	if err = u.ToggleCourier(); err != nil {
		return nil, err
	}

	if err = userRepo.Update(ctx, u); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "user role toggled", "user_id", u.ID().String(), "role", u.Role().String())
	return u, nil
}
