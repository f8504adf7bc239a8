package push

import (
	"context"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// Sender delivers a best-effort push notification to one device. Errors
// are returned for logging only; callers must never let them fail the
// surrounding operation.
type Sender interface {
	Send(ctx context.Context, deviceToken, message string) error
}

// FCMSender sends through Firebase Cloud Messaging.
type FCMSender struct {
	client *messaging.Client
}

func NewFCMSender(ctx context.Context, credentialsFile string) (*FCMSender, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, err
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, err
	}
	return &FCMSender{client: client}, nil
}

func (s *FCMSender) Send(ctx context.Context, deviceToken, message string) error {
	_, err := s.client.Send(ctx, &messaging.Message{
		Token: deviceToken,
		Notification: &messaging.Notification{
			Title: "Circles",
			Body:  message,
		},
	})
	return err
}

// NopSender drops every message. Used when push is not configured.
type NopSender struct{}

func (NopSender) Send(ctx context.Context, deviceToken, message string) error { return nil }
