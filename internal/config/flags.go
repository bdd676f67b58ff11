package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key access token signing key
//	-confirmation-sign-key confirmation token signing key
//	-token-issuer token issuer name
//	-access-token-duration access token lifetime (e.g., "1h", "30m")
//	-confirmation-token-duration confirmation token lifetime
//	-password-hash-cost bcrypt cost factor
//	-public-url externally reachable base URL
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-log-level zerolog level name
//	-mail-api-url mail API base URL
//	-mail-api-key mail API key
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-social-api", flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var confirmationSignKey string
	var tokenIssuer string
	var accessTokenDuration time.Duration
	var confirmationTokenDuration time.Duration
	var passwordHashCost int
	var publicURL string
	var requestTimeout time.Duration
	var logLevel string
	var mailAPIURL string
	var mailAPIKey string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Access token signing key")
	fs.StringVar(&confirmationSignKey, "confirmation-sign-key", "", "Confirmation token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&accessTokenDuration, "access-token-duration", 0, "Access token duration (e.g., 1h, 30m)")
	fs.DurationVar(&confirmationTokenDuration, "confirmation-token-duration", 0, "Confirmation token duration (e.g., 15m)")
	fs.IntVar(&passwordHashCost, "password-hash-cost", 0, "bcrypt cost factor")
	fs.StringVar(&publicURL, "public-url", "", "Public base URL used in confirmation links")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&mailAPIURL, "mail-api-url", "", "Mail API base URL")
	fs.StringVar(&mailAPIKey, "mail-api-key", "", "Mail API key")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:              tokenSignKey,
			ConfirmationSignKey:       confirmationSignKey,
			TokenIssuer:               tokenIssuer,
			AccessTokenDuration:       accessTokenDuration,
			ConfirmationTokenDuration: confirmationTokenDuration,
			PasswordHashCost:          passwordHashCost,
			PublicURL:                 publicURL,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Log: Log{
			Level: logLevel,
		},
		Mail: Mail{
			APIURL: mailAPIURL,
			APIKey: mailAPIKey,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
