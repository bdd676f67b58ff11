package config

import "time"

const (
	defaultTokenIssuer               = "go-social-api"
	defaultAccessTokenDuration       = time.Hour
	defaultConfirmationTokenDuration = 15 * time.Minute
	defaultPasswordHashCost          = 12
	defaultPublicURL                 = "http://localhost:8080"
	defaultHTTPAddress               = "localhost:8080"
	defaultRequestTimeout            = 30 * time.Second
	defaultShutdownTimeout           = 10 * time.Second
	defaultMaxOpenConns              = 10
	defaultLogLevel                  = "info"
	defaultMailFrom                  = "noreply@go-social-api.local"
	defaultMailRequestTimeout        = 10 * time.Second
	defaultMailQueueSize             = 100
)

// defaultConfig returns the lowest-priority configuration layer.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:               defaultTokenIssuer,
			AccessTokenDuration:       defaultAccessTokenDuration,
			ConfirmationTokenDuration: defaultConfirmationTokenDuration,
			PasswordHashCost:          defaultPasswordHashCost,
			PublicURL:                 defaultPublicURL,
		},
		Storage: Storage{
			DB: DB{MaxOpenConns: defaultMaxOpenConns},
		},
		Server: Server{
			HTTPAddress:     defaultHTTPAddress,
			RequestTimeout:  defaultRequestTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
		},
		Log: Log{Level: defaultLogLevel},
		Mail: Mail{
			From:           defaultMailFrom,
			RequestTimeout: defaultMailRequestTimeout,
		},
		Workers: Workers{MailQueueSize: defaultMailQueueSize},
	}
}
