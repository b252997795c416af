package notifier

import (
	"context"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/linesmerrill/moderator-codes/config"
	templates "github.com/linesmerrill/moderator-codes/templates/html"
)

// Dialer is the part of gomail.Dialer the SMTP notifier uses
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPNotifier sends codes through an SMTP account, e.g. a Gmail account with an app password
type SMTPNotifier struct {
	From     string
	FromName string
	Dialer   Dialer
}

// NewSMTPNotifier builds a gomail dialer from the mail config
func NewSMTPNotifier(conf config.MailConfig) *SMTPNotifier {
	return &SMTPNotifier{
		From:     conf.From,
		FromName: conf.FromName,
		Dialer:   gomail.NewDialer(conf.SMTPHost, conf.SMTPPort, conf.SMTPUsername, conf.SMTPPassword),
	}
}

// Send delivers the code email. gomail has no context support, so ctx is only checked before dialing.
func (n *SMTPNotifier) Send(ctx context.Context, email, code string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", n.From, n.FromName)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", templates.ModeratorCodeSubject)
	msg.SetBody("text/html", templates.RenderModeratorCode(code))

	if err := n.Dialer.DialAndSend(msg); err != nil {
		zap.S().Errorw("failed to send moderator code email", "transport", "smtp", "email", email, "error", err)
		return err
	}
	zap.S().Infow("moderator code email sent", "transport", "smtp", "email", email)
	return nil
}
