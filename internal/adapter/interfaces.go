// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides outbound integrations of the go-social-api server.
//
// The primary abstraction is [MailSender], which decouples the confirmation
// flow from the mail transport. The package ships a resty-based HTTP
// implementation for Mailgun-compatible APIs ([NewHTTPMailSender]) and a
// log-only implementation used when no API is configured.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] regardless of the provider.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-social-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mail_sender_mock.go -package=mock

// MailSender delivers a single plain-text mail. Implementations must honour
// ctx cancellation.
type MailSender interface {
	Send(ctx context.Context, mail models.Mail) error
}
