package email

import (
	"context"
	"errors"
	"time"
)

// Sender define la interfaz para avisar al usuario que su resultado esta listo.
type Sender interface {
	SendResultsReady(ctx context.Context, toEmail string, sessionID string, calculatedAt time.Time) error
}

type disabledSender struct {
	reason string
}

func NewDisabledSender(reason string) Sender {
	return &disabledSender{reason: reason}
}

func (s *disabledSender) SendResultsReady(_ context.Context, _ string, _ string, _ time.Time) error {
	if s.reason == "" {
		return errors.New("email sender disabled")
	}
	return errors.New(s.reason)
}
