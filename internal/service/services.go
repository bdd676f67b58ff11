package service

import (
	"github.com/MKhiriev/go-social-api/internal/config"
	"github.com/MKhiriev/go-social-api/internal/crypto"
	"github.com/MKhiriev/go-social-api/internal/logger"
	"github.com/MKhiriev/go-social-api/internal/store"
)

type Services struct {
	AuthService    AuthService
	PostService    PostService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, mailQueue MailQueue, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	hasher := crypto.NewBcryptHasher(cfg.App.PasswordHashCost)

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, hasher, mailQueue, cfg.App, logger),
		PostService:    NewPostService(storages.PostRepository, logger),
		AppInfoService: appInfoService,
	}, nil
}
