// Package fcm delivers push notifications through Firebase Cloud Messaging.
package fcm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"commandes/internal/core/ports"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// ErrGatewayDisabled is returned by the gateway built without credentials.
var ErrGatewayDisabled = errors.New("push notifications are disabled")

type sender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// Gateway implements ports.NotificationGateway on top of a messaging client.
type Gateway struct {
	client         sender
	isUnregistered func(error) bool
	logger         *slog.Logger
}

var _ ports.NotificationGateway = (*Gateway)(nil)

// NewGateway initialises a Firebase app from a service account file.
func NewGateway(ctx context.Context, credentialsFile string, logger *slog.Logger) (*Gateway, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("init firebase messaging: %w", err)
	}

	return newGateway(client, logger), nil
}

func newGateway(client sender, logger *slog.Logger) *Gateway {
	return &Gateway{
		client:         client,
		isUnregistered: messaging.IsUnregistered,
		logger:         logger.With("component", "fcm_gateway"),
	}
}

// Send pushes msg to a single device. A token Firebase no longer knows
// is reported as ports.ErrDeviceTokenUnregistered.
func (g *Gateway) Send(ctx context.Context, msg ports.Message) error {
	if msg.Token == "" {
		return ports.ErrDeviceTokenUnregistered
	}

	id, err := g.client.Send(ctx, &messaging.Message{
		Token: msg.Token,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
	})
	if err != nil {
		if g.isUnregistered(err) {
			return fmt.Errorf("%w: %w", ports.ErrDeviceTokenUnregistered, err)
		}
		return fmt.Errorf("fcm send: %w", err)
	}

	g.logger.DebugContext(ctx, "push sent", "message_id", id)
	return nil
}

// DisabledGateway stands in when no credentials are configured. Every send
// fails, so the dispatcher logs it and the request carries on.
type DisabledGateway struct{}

var _ ports.NotificationGateway = DisabledGateway{}

// Send always returns ErrGatewayDisabled.
func (DisabledGateway) Send(context.Context, ports.Message) error {
	return ErrGatewayDisabled
}
