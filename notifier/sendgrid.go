package notifier

import (
	"context"
	"fmt"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	"github.com/linesmerrill/moderator-codes/config"
	templates "github.com/linesmerrill/moderator-codes/templates/html"
)

// SendClient is the part of the sendgrid client the SendGrid notifier uses
type SendClient interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// SendGridNotifier sends codes through the SendGrid v3 API
type SendGridNotifier struct {
	From     string
	FromName string
	Client   SendClient
}

// NewSendGridNotifier creates a SendGrid backed notifier from the mail config
func NewSendGridNotifier(conf config.MailConfig) *SendGridNotifier {
	return &SendGridNotifier{
		From:     conf.From,
		FromName: conf.FromName,
		Client:   sendgrid.NewSendClient(conf.SendGridAPIKey),
	}
}

// Send delivers the code email. Any non-2xx response is an error.
func (n *SendGridNotifier) Send(ctx context.Context, email, code string) error {
	from := mail.NewEmail(n.FromName, n.From)
	to := mail.NewEmail("", email)
	message := mail.NewV3MailInit(from, templates.ModeratorCodeSubject, to, mail.NewContent("text/html", templates.RenderModeratorCode(code)))

	response, err := n.Client.SendWithContext(ctx, message)
	if err != nil {
		zap.S().Errorw("failed to send moderator code email", "transport", "sendgrid", "email", email, "error", err)
		return err
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		zap.S().Errorw("sendgrid returned error status", "status", response.StatusCode, "body", response.Body, "email", email)
		return fmt.Errorf("sendgrid error: status %d", response.StatusCode)
	}

	zap.S().Infow("moderator code email sent", "transport", "sendgrid", "email", email, "statusCode", response.StatusCode)
	return nil
}
