// Package notifier delivers moderator verification codes by email.
package notifier

import (
	"context"
	"fmt"

	"github.com/linesmerrill/moderator-codes/config"
)

// go generate: mockery --name Notifier

// Notifier sends a generated code to its recipient. Every call sends a new message.
type Notifier interface {
	Send(ctx context.Context, email, code string) error
}

// New returns the notifier for the configured mail transport
func New(conf config.MailConfig) (Notifier, error) {
	switch conf.Transport {
	case config.TransportSMTP, "":
		return NewSMTPNotifier(conf), nil
	case config.TransportSendGrid:
		return NewSendGridNotifier(conf), nil
	default:
		return nil, fmt.Errorf("unknown mail transport %q", conf.Transport)
	}
}
