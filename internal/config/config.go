package config

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr string
	LogLevel string

	// Empty DatabaseURL selects the in-memory store.
	DatabaseURL string

	// Session auth for mutating HTTP routes. All four must be set to
	// enable it; otherwise the API runs open.
	SessionHashKey         []byte
	SessionBlockKey        []byte
	OperatorUser           string
	OperatorPasswordBcrypt string
}

func FromEnv() (Config, error) {
	// .env is a local-dev convenience; absence is not an error.
	_ = godotenv.Load()

	cfg := Config{
		HTTPAddr:               envDefault("HTTP_ADDR", ":8080"),
		LogLevel:               envDefault("LOG_LEVEL", "info"),
		DatabaseURL:            strings.TrimSpace(os.Getenv("DATABASE_URL")),
		OperatorUser:           strings.TrimSpace(os.Getenv("OPERATOR_USER")),
		OperatorPasswordBcrypt: strings.TrimSpace(os.Getenv("OPERATOR_PASSWORD_BCRYPT")),
	}

	var err error
	if cfg.SessionHashKey, err = optB64("SESSION_HASH_KEY"); err != nil {
		return cfg, err
	}
	if cfg.SessionBlockKey, err = optB64("SESSION_BLOCK_KEY"); err != nil {
		return cfg, err
	}

	if cfg.AuthEnabled() {
		if len(cfg.SessionHashKey) != 32 {
			return cfg, fmt.Errorf("SESSION_HASH_KEY must decode to 32 bytes (got %d)", len(cfg.SessionHashKey))
		}
		switch len(cfg.SessionBlockKey) {
		case 16, 24, 32:
		default:
			return cfg, fmt.Errorf("SESSION_BLOCK_KEY must decode to 16, 24 or 32 bytes (got %d)", len(cfg.SessionBlockKey))
		}
	}
	return cfg, nil
}

// AuthEnabled reports whether session auth is fully configured.
func (c Config) AuthEnabled() bool {
	return len(c.SessionHashKey) > 0 && len(c.SessionBlockKey) > 0 &&
		c.OperatorUser != "" && c.OperatorPasswordBcrypt != ""
}

func envDefault(k, d string) string {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return d
	}
	return v
}

func optB64(k string) ([]byte, error) {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return nil, nil
	}
	if b, err := base64.StdEncoding.DecodeString(v); err == nil {
		return b, nil
	}
	b, err := base64.RawStdEncoding.DecodeString(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", k, err)
	}
	return b, nil
}
