package config

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Mode selects the interface the process serves.
type Mode string

const (
	ModeConsole Mode = "console"
	ModeHTTP    Mode = "http"
)

// AuthStrategy selects the session token format.
type AuthStrategy string

const (
	AuthStrategyHMAC AuthStrategy = "hmac"
	AuthStrategyJWT  AuthStrategy = "jwt"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	Mode            Mode
	RunAddress      string
	AuthStrategy    AuthStrategy
	TokenSecret     string
	TokenTTL        time.Duration
	BcryptCost      int
	AMQPURL         string
	EventsExchange  string
	EventWorkers    int
	EventBuffer     int
	ShutdownTimeout time.Duration
	LogLevel        slog.Level
}

const (
	defaultMode            = ModeConsole
	defaultRunAddress      = ":8080"
	defaultAuthStrategy    = AuthStrategyHMAC
	defaultTokenSecret     = "change-me-in-production"
	defaultTokenTTL        = 24 * time.Hour
	defaultEventsExchange  = "staybook.events"
	defaultEventWorkers    = 2
	defaultEventBuffer     = 64
	defaultShutdownTimeout = 10 * time.Second
	defaultLogLevel        = "info"

	envFileKey = "STAYBOOK_ENV_FILE"
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	lookup, err := withEnvFile(lookup)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		RunAddress:      getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		TokenSecret:     getString(lookup, "TOKEN_SECRET", defaultTokenSecret),
		TokenTTL:        getDuration(lookup, "TOKEN_TTL", defaultTokenTTL),
		BcryptCost:      getInt(lookup, "BCRYPT_COST", 0),
		AMQPURL:         getString(lookup, "RABBITMQ_URL", getString(lookup, "AMQP_URL", "")),
		EventsExchange:  getString(lookup, "EVENTS_EXCHANGE", defaultEventsExchange),
		EventWorkers:    getInt(lookup, "EVENT_WORKERS", defaultEventWorkers),
		EventBuffer:     getInt(lookup, "EVENT_BUFFER", defaultEventBuffer),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("staybook", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		modeStr            = getString(lookup, "STAYBOOK_MODE", string(defaultMode))
		authStr            = getString(lookup, "AUTH_STRATEGY", string(defaultAuthStrategy))
		logLevelStr        = getString(lookup, "LOG_LEVEL", defaultLogLevel)
		tokenTTLStr        = cfg.TokenTTL.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&modeStr, "mode", modeStr, "Interface to serve: console or http")
	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&authStr, "auth", authStr, "Session token strategy: hmac or jwt")
	fs.StringVar(&cfg.TokenSecret, "token-secret", cfg.TokenSecret, "Secret for signing session tokens")
	fs.StringVar(&tokenTTLStr, "token-ttl", tokenTTLStr, "Session token lifetime")
	fs.IntVar(&cfg.BcryptCost, "bcrypt-cost", cfg.BcryptCost, "bcrypt cost for secret digests, 0 for default")
	fs.StringVar(&cfg.AMQPURL, "amqp", cfg.AMQPURL, "RabbitMQ URL for domain events, empty to log them")
	fs.StringVar(&cfg.EventsExchange, "exchange", cfg.EventsExchange, "Topic exchange for domain events")
	fs.IntVar(&cfg.EventWorkers, "event-workers", cfg.EventWorkers, "Number of concurrent event publishers")
	fs.IntVar(&cfg.EventBuffer, "event-buffer", cfg.EventBuffer, "Pending event buffer size")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.StringVar(&logLevelStr, "log-level", logLevelStr, "Log level: debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	switch Mode(strings.ToLower(modeStr)) {
	case ModeConsole, ModeHTTP:
		cfg.Mode = Mode(strings.ToLower(modeStr))
	default:
		return nil, fmt.Errorf("invalid mode %q", modeStr)
	}

	switch AuthStrategy(strings.ToLower(authStr)) {
	case AuthStrategyHMAC, AuthStrategyJWT:
		cfg.AuthStrategy = AuthStrategy(strings.ToLower(authStr))
	default:
		return nil, fmt.Errorf("invalid auth strategy %q", authStr)
	}

	if cfg.TokenTTL, err = time.ParseDuration(tokenTTLStr); err != nil {
		return nil, fmt.Errorf("invalid token ttl: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(logLevelStr)); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	if secretFile, ok := lookup("TOKEN_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read token secret file: %w", err)
		}
		cfg.TokenSecret = strings.TrimSpace(string(content))
	}

	if cfg.TokenSecret == "" {
		return nil, fmt.Errorf("token secret must not be empty")
	}

	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}

	if cfg.BcryptCost < 0 {
		cfg.BcryptCost = 0
	}

	if cfg.EventWorkers <= 0 {
		cfg.EventWorkers = defaultEventWorkers
	}

	if cfg.EventBuffer <= 0 {
		cfg.EventBuffer = defaultEventBuffer
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	return cfg, nil
}

// withEnvFile extends lookup with values from the dotenv file named by
// STAYBOOK_ENV_FILE. Process environment wins over the file.
func withEnvFile(lookup envLookup) (envLookup, error) {
	path, ok := lookup(envFileKey)
	if !ok || path == "" {
		return lookup, nil
	}
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read env file: %w", err)
	}
	return func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := values[key]
		return v, ok
	}, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
