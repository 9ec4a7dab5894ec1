package commands

import (
	"context"
)

// UpdateDefaultLangCommandHandler stores a user's notification language.
type UpdateDefaultLangCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewUpdateDefaultLangCommandHandler creates the handler.
func NewUpdateDefaultLangCommandHandler(uowFactory UserUoWFactory) UpdateDefaultLangCommandHandler {
	return UpdateDefaultLangCommandHandler{uowFactory: uowFactory}
}

// Handle loads the user, changes the language and saves it.
func (h UpdateDefaultLangCommandHandler) Handle(ctx context.Context, cmd UpdateDefaultLangCommand) error {
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

	if err = u.SetDefaultLang(cmd.Lang()); err != nil {
		return err
	}

	if err = userRepo.Update(ctx, u); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
