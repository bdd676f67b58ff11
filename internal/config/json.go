package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the on-disk JSON layout.
// Durations are written as Go duration strings ("1h", "30s").
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey              string   `json:"token_sign_key"`
		ConfirmationSignKey       string   `json:"confirmation_sign_key"`
		TokenIssuer               string   `json:"token_issuer"`
		AccessTokenDuration       Duration `json:"access_token_duration"`
		ConfirmationTokenDuration Duration `json:"confirmation_token_duration"`
		PasswordHashCost          int      `json:"password_hash_cost"`
		PublicURL                 string   `json:"public_url"`
		Version                   string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN          string `json:"dsn"`
			MaxOpenConns int    `json:"max_open_conns"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Log struct {
		Level             string `json:"level"`
		EmailVisibleChars int    `json:"email_visible_chars"`
	} `json:"log,omitempty"`

	Mail struct {
		APIURL         string   `json:"api_url"`
		APIKey         string   `json:"api_key"`
		From           string   `json:"from"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"mail,omitempty"`

	Workers struct {
		MailQueueSize int `json:"mail_queue_size"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:              jsonCfg.App.TokenSignKey,
			ConfirmationSignKey:       jsonCfg.App.ConfirmationSignKey,
			TokenIssuer:               jsonCfg.App.TokenIssuer,
			AccessTokenDuration:       time.Duration(jsonCfg.App.AccessTokenDuration),
			ConfirmationTokenDuration: time.Duration(jsonCfg.App.ConfirmationTokenDuration),
			PasswordHashCost:          jsonCfg.App.PasswordHashCost,
			PublicURL:                 jsonCfg.App.PublicURL,
			Version:                   jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN:          jsonCfg.Storage.DB.DSN,
				MaxOpenConns: jsonCfg.Storage.DB.MaxOpenConns,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Log: Log{
			Level:             jsonCfg.Log.Level,
			EmailVisibleChars: jsonCfg.Log.EmailVisibleChars,
		},
		Mail: Mail{
			APIURL:         jsonCfg.Mail.APIURL,
			APIKey:         jsonCfg.Mail.APIKey,
			From:           jsonCfg.Mail.From,
			RequestTimeout: time.Duration(jsonCfg.Mail.RequestTimeout),
		},
		Workers: Workers{
			MailQueueSize: jsonCfg.Workers.MailQueueSize,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
