package commands_test

import (
	"testing"

	"commandes/internal/core/application/usecases/commands"
	"commandes/internal/core/domain/model/kernel"
	"commandes/internal/core/domain/model/order"
	"commandes/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChangeOrderStatusCommand_ValidInput(t *testing.T) {
	orderID, actorID := kernel.NewUUID(), kernel.NewUUID()

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, actorID, order.Loading, order.Courier)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, actorID, cmd.ActorID())
	assert.Equal(t, order.Loading, cmd.Target())
	assert.Equal(t, order.Courier, cmd.Mode())
	assert.True(t, cmd.Notify())
}

func TestNewChangeOrderStatusCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewChangeOrderStatusCommand(kernel.UUID{}, kernel.NewUUID(), "shipped", order.TransitionMode(9))

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	require.ErrorIs(t, err, order.ErrInvalidStatus)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestChangeOrderStatusCommand_WithoutNotification(t *testing.T) {
	cmd, err := commands.NewChangeOrderStatusCommand(kernel.NewUUID(), kernel.NewUUID(), order.Paid, order.Administrative)
	require.NoError(t, err)

	silent := cmd.WithoutNotification()

	assert.False(t, silent.Notify())
	assert.True(t, cmd.Notify())
	require.NoError(t, silent.Validate())
}

func TestChangeOrderStatusCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.ChangeOrderStatusCommand

	require.ErrorIs(t, cmd.Validate(), commands.ErrChangeOrderStatusCommandIsNotConstructed)
}
