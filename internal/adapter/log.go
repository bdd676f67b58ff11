package adapter

import (
	"context"

	"github.com/MKhiriev/go-social-api/internal/logger"
	"github.com/MKhiriev/go-social-api/models"
)

type logMailSender struct {
	logger *logger.Logger
}

// NewLogMailSender returns a [MailSender] that writes mails to the log
// instead of delivering them. Used in development when no mail API is set.
func NewLogMailSender(logger *logger.Logger) MailSender {
	return &logMailSender{logger: logger}
}

// Send implements [MailSender].
func (l *logMailSender) Send(ctx context.Context, mail models.Mail) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if mail.To == "" {
		return ErrEmptyRecipient
	}

	l.logger.Info().
		Str("to", logger.MaskEmail(mail.To)).
		Str("subject", mail.Subject).
		Str("text", mail.Text).
		Msg("mail api is not configured, mail written to log")
	return nil
}
