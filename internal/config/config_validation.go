// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// minSignKeyLength is the shortest accepted HMAC signing secret.
const minSignKeyLength = 16

// applyFallbacks fills derived values that depend on other fields.
func (cfg *StructuredConfig) applyFallbacks() {
	if cfg.App.ConfirmationSignKey == "" {
		cfg.App.ConfirmationSignKey = cfg.App.TokenSignKey
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// package sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if len(cfg.App.TokenSignKey) < minSignKeyLength {
		return fmt.Errorf("%w: token sign key must be at least %d bytes", ErrInvalidAppConfigs, minSignKeyLength)
	}
	if len(cfg.App.ConfirmationSignKey) < minSignKeyLength {
		return fmt.Errorf("%w: confirmation sign key must be at least %d bytes", ErrInvalidAppConfigs, minSignKeyLength)
	}
	if cfg.App.TokenIssuer == "" {
		return fmt.Errorf("%w: token issuer is empty", ErrInvalidAppConfigs)
	}
	if cfg.App.AccessTokenDuration <= 0 || cfg.App.ConfirmationTokenDuration <= 0 {
		return fmt.Errorf("%w: token durations must be positive", ErrInvalidAppConfigs)
	}
	if cfg.App.AccessTokenDuration <= cfg.App.ConfirmationTokenDuration {
		return fmt.Errorf("%w: access token must outlive confirmation token", ErrInvalidAppConfigs)
	}
	if cfg.App.PasswordHashCost < bcrypt.MinCost || cfg.App.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: password hash cost %d out of range", ErrInvalidAppConfigs, cfg.App.PasswordHashCost)
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Mail.APIURL != "" && cfg.Mail.APIKey == "" {
		return fmt.Errorf("%w: api key is required with api url", ErrInvalidMailConfigs)
	}

	if cfg.Workers.MailQueueSize < 1 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
