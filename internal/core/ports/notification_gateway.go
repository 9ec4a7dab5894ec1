package ports

import (
	"context"
	"errors"
)

// ErrDeviceTokenUnregistered is returned by a NotificationGateway when the
// provider reports the token as permanently invalid, typically because the
// app was uninstalled. Callers treat it as a silent skip.
var ErrDeviceTokenUnregistered = errors.New("device token is unregistered")

// Message is a push notification addressed to a single device.
type Message struct {
	Token string
	Title string
	Body  string
	// Data is delivered alongside the notification for the app to route on.
	Data map[string]string
}

// NotificationGateway delivers push notifications.
type NotificationGateway interface {
	// Send delivers msg once. It returns nil on success,
	// ErrDeviceTokenUnregistered (possibly wrapped) for dead tokens and any
	// other error for transport or provider failures. No retry is attempted.
	Send(ctx context.Context, msg Message) error
}
