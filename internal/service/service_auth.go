package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-social-api/internal/config"
	"github.com/MKhiriev/go-social-api/internal/crypto"
	"github.com/MKhiriev/go-social-api/internal/logger"
	"github.com/MKhiriev/go-social-api/internal/store"
	"github.com/MKhiriev/go-social-api/models"
)

// dummyPassword is hashed once and verified against when a login names an
// unknown email, so that both failure paths cost one bcrypt comparison.
const dummyPassword = "go-social-api-dummy-password"

const confirmationMailSubject = "Please confirm your email"

// authService is the concrete implementation of AuthService.
type authService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher

	confirmationCodec TokenCodec
	accessCodec       TokenCodec

	// mailQueue receives confirmation mails. May be nil.
	mailQueue MailQueue

	// publicURL is the base of confirmation links.
	publicURL string

	dummyHashOnce sync.Once
	dummyHash     string

	logger *logger.Logger
}

// NewAuthService constructs an AuthService from its collaborators and the
// token settings in cfg.
//
// The returned service is safe for concurrent use; it holds no locks while
// talking to the repository.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, mailQueue MailQueue, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:    userRepository,
		hasher:            hasher,
		confirmationCodec: NewConfirmationTokenCodec(cfg),
		accessCodec:       NewAccessTokenCodec(cfg),
		mailQueue:         mailQueue,
		publicURL:         strings.TrimRight(cfg.PublicURL, "/"),
		logger:            logger,
	}
}

// Register hashes password, signs a confirmation token, inserts an
// unconfirmed user and returns the token. A taken email fails with ErrEmailAlreadyExists; the
// uniqueness check is the INSERT itself.
//
// The confirmation mail is queued on a best-effort basis: a full queue is
// logged and does not fail registration.
func (a *authService) Register(ctx context.Context, email, password string) (string, error) {
	log := logger.FromContext(ctx)

	passwordHash, err := a.hasher.Hash(password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return "", fmt.Errorf("register: %w", err)
	}

	// the token is signed before the insert so a signing failure leaves no
	// unconfirmed row behind
	token, err := a.confirmationCodec.Encode(email)
	if err != nil {
		log.Err(err).Str("email", logger.MaskEmail(email)).Msg("confirmation token creation failed")
		return "", err
	}

	user, err := a.userRepository.CreateUser(ctx, email, passwordHash)
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			log.Info().Str("email", logger.MaskEmail(email)).Msg("registration with taken email")
			return "", ErrEmailAlreadyExists
		}
		log.Err(err).Str("email", logger.MaskEmail(email)).Msg("user creation ended with error")
		return "", fmt.Errorf("user creation ended with error: %w", err)
	}

	a.enqueueConfirmation(ctx, email, token)

	log.Info().Int64("id", user.ID).Str("email", logger.MaskEmail(email)).Msg("user registered")
	return token, nil
}

func (a *authService) enqueueConfirmation(ctx context.Context, email, token string) {
	if a.mailQueue == nil {
		return
	}

	mail := models.Mail{
		To:      email,
		Subject: confirmationMailSubject,
		Text:    confirmationMailText(email, a.ConfirmationURL(token)),
	}
	if err := a.mailQueue.Enqueue(mail); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("email", logger.MaskEmail(email)).
			Msg("confirmation mail was not queued")
	}
}

// ConfirmationURL returns the link that confirms token when opened.
func (a *authService) ConfirmationURL(token string) string {
	return a.publicURL + "/confirm/" + url.PathEscape(token)
}

func confirmationMailText(email, link string) string {
	return fmt.Sprintf("Hi %s! You have successfully signed up to the Social API.\n"+
		"Please confirm your email by clicking on the link below:\n%s", email, link)
}

// Confirm decodes a confirmation token and marks its user confirmed.
// Token failures are returned unchanged (ErrTokenExpired, ErrTokenInvalid).
func (a *authService) Confirm(ctx context.Context, confirmationToken string) error {
	log := logger.FromContext(ctx)

	email, err := a.confirmationCodec.Decode(confirmationToken)
	if err != nil {
		log.Debug().Err(err).Msg("confirmation token rejected")
		return err
	}

	if _, err = a.findUser(ctx, email); err != nil {
		return err
	}

	if err = a.userRepository.SetConfirmed(ctx, email); err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return ErrUserNotFound
		}
		log.Err(err).Str("email", logger.MaskEmail(email)).Msg("user confirmation failed")
		return fmt.Errorf("user confirmation failed: %w", err)
	}

	log.Info().Str("email", logger.MaskEmail(email)).Msg("user confirmed")
	return nil
}

// Login authenticates a user and returns an access token.
//
// An unknown email and a wrong password both fail with ErrInvalidCredentials
// after one bcrypt comparison. An unconfirmed user with the right password
// fails with ErrUserNotConfirmed.
func (a *authService) Login(ctx context.Context, email, password string) (string, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			a.verifyDummy(password)
			log.Info().Str("email", logger.MaskEmail(email)).Msg("login with unknown email")
			return "", ErrInvalidCredentials
		}
		log.Err(err).Str("email", logger.MaskEmail(email)).Msg("user search by email failed")
		return "", fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.hasher.Verify(password, user.PasswordHash) {
		log.Info().Int64("id", user.ID).Msg("wrong password")
		return "", ErrInvalidCredentials
	}

	if !user.Confirmed {
		log.Info().Int64("id", user.ID).Msg("login of unconfirmed user")
		return "", ErrUserNotConfirmed
	}

	token, err := a.accessCodec.Encode(user.Email)
	if err != nil {
		log.Err(err).Int64("id", user.ID).Msg("access token creation failed")
		return "", err
	}

	return token, nil
}

// verifyDummy spends one password verification against a throwaway hash.
func (a *authService) verifyDummy(password string) {
	a.dummyHashOnce.Do(func() {
		hash, err := a.hasher.Hash(dummyPassword)
		if err != nil {
			a.logger.Err(err).Msg("dummy password hashing failed")
			return
		}
		a.dummyHash = hash
	})

	if a.dummyHash != "" {
		_ = a.hasher.Verify(password, a.dummyHash)
	}
}

// ResolveCurrentUser decodes an access token and loads its user. A user
// deleted after issuance yields ErrUserNotFound.
func (a *authService) ResolveCurrentUser(ctx context.Context, accessToken string) (models.User, error) {
	email, err := a.accessCodec.Decode(accessToken)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("access token rejected")
		return models.User{}, err
	}

	return a.findUser(ctx, email)
}

func (a *authService) findUser(ctx context.Context, email string) (models.User, error) {
	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrUserNotFound
		}
		logger.FromContext(ctx).Err(err).Str("email", logger.MaskEmail(email)).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}
	return user, nil
}
