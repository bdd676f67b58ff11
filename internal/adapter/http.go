package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-social-api/internal/config"
	"github.com/MKhiriev/go-social-api/internal/logger"
	"github.com/MKhiriev/go-social-api/internal/utils"
	"github.com/MKhiriev/go-social-api/models"
)

// mailAPIUser is the basic-auth user name expected by Mailgun-compatible APIs.
const mailAPIUser = "api"

type httpMailSender struct {
	client *utils.HTTPClient

	from   string
	apiKey string

	logger *logger.Logger
}

// NewMailSender returns the HTTP sender when mailCfg.APIURL is set and the
// log-only sender otherwise.
func NewMailSender(mailCfg config.Mail, logger *logger.Logger) (MailSender, error) {
	if strings.TrimSpace(mailCfg.APIURL) == "" {
		return NewLogMailSender(logger), nil
	}
	return NewHTTPMailSender(mailCfg, logger)
}

// NewHTTPMailSender constructs a [MailSender] that POSTs form-encoded messages
// to {APIURL}/messages, authenticating with basic auth as "api":APIKey.
//
// Returns an error if mailCfg.APIURL is empty or cannot be parsed as a valid URL.
func NewHTTPMailSender(mailCfg config.Mail, logger *logger.Logger) (MailSender, error) {
	baseURL, err := normalizeBaseURL(mailCfg.APIURL)
	if err != nil {
		return nil, fmt.Errorf("invalid mail api url: %w", err)
	}

	return &httpMailSender{
		client: utils.NewHTTPClient(baseURL, mailCfg.RequestTimeout),
		from:   mailCfg.From,
		apiKey: mailCfg.APIKey,
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Send implements [MailSender].
func (h *httpMailSender) Send(ctx context.Context, mail models.Mail) error {
	if strings.TrimSpace(mail.To) == "" {
		return ErrEmptyRecipient
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetBasicAuth(mailAPIUser, h.apiKey).
		SetFormData(map[string]string{
			"from":    h.from,
			"to":      mail.To,
			"subject": mail.Subject,
			"text":    mail.Text,
		}).
		Post("/messages")
	if err != nil {
		return fmt.Errorf("send mail request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.logger.Debug().
		Str("to", logger.MaskEmail(mail.To)).
		Str("subject", mail.Subject).
		Msg("mail sent")
	return nil
}
