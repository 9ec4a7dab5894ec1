package fcm

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"commandes/internal/core/ports"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, message *messaging.Message) (string, error) {
	args := m.Called(ctx, message)
	return args.String(0), args.Error(1)
}

func newTestGateway(client sender) *Gateway {
	return newGateway(client, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestGateway_Send(t *testing.T) {
	msg := ports.Message{
		Token: "device-1",
		Title: "Commande payee",
		Body:  "Votre commande CM0A1B2C3D est payee",
		Data:  map[string]string{"code": "CM0A1B2C3D"},
	}

	t.Run("maps_message", func(t *testing.T) {
		client := new(MockSender)
		client.On("Send", mock.Anything, mock.MatchedBy(func(m *messaging.Message) bool {
			return m.Token == "device-1" &&
				m.Notification != nil &&
				m.Notification.Title == msg.Title &&
				m.Notification.Body == msg.Body &&
				m.Data["code"] == "CM0A1B2C3D"
		})).Return("projects/p/messages/1", nil).Once()

		err := newTestGateway(client).Send(t.Context(), msg)

		require.NoError(t, err)
		client.AssertExpectations(t)
	})

	t.Run("empty_token_is_unregistered", func(t *testing.T) {
		client := new(MockSender)

		err := newTestGateway(client).Send(t.Context(), ports.Message{Title: "x"})

		require.ErrorIs(t, err, ports.ErrDeviceTokenUnregistered)
		client.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("unregistered_token", func(t *testing.T) {
		providerErr := errors.New("registration-token-not-registered")
		client := new(MockSender)
		client.On("Send", mock.Anything, mock.Anything).Return("", providerErr).Once()
		gateway := newTestGateway(client)
		gateway.isUnregistered = func(err error) bool { return errors.Is(err, providerErr) }

		err := gateway.Send(t.Context(), msg)

		require.ErrorIs(t, err, ports.ErrDeviceTokenUnregistered)
		require.ErrorIs(t, err, providerErr)
	})

	t.Run("other_failure", func(t *testing.T) {
		providerErr := errors.New("unavailable")
		client := new(MockSender)
		client.On("Send", mock.Anything, mock.Anything).Return("", providerErr).Once()

		err := newTestGateway(client).Send(t.Context(), msg)

		require.ErrorIs(t, err, providerErr)
		assert.NotErrorIs(t, err, ports.ErrDeviceTokenUnregistered)
	})
}

func TestDisabledGateway_Send(t *testing.T) {
	err := DisabledGateway{}.Send(t.Context(), ports.Message{Token: "device-1"})

	require.ErrorIs(t, err, ErrGatewayDisabled)
}
