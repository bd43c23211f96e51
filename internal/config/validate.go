package config

import (
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be in [%d, %d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in [1, 65535] (got %d)", c.Server.Port)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)",
			c.Database.MinConns, c.Database.MaxConns)
	}

	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	if c.Catalog.CacheSize <= 0 {
		return fmt.Errorf("catalog.cache_size must be > 0 (got %d)", c.Catalog.CacheSize)
	}
	if c.Compare.MaxSessions <= 0 {
		return fmt.Errorf("compare.max_sessions must be > 0 (got %d)", c.Compare.MaxSessions)
	}
	if c.Compare.SessionTTL <= 0 {
		return fmt.Errorf("compare.session_ttl must be > 0 (got %v)", c.Compare.SessionTTL)
	}
	if c.RateLimit.AuthPerMinute < 0 {
		return fmt.Errorf("ratelimit.auth_per_minute must be >= 0 (got %d)", c.RateLimit.AuthPerMinute)
	}

	return nil
}

func (l LogConfig) validate() error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return fmt.Errorf("unknown level %q", l.Level)
	}
	switch strings.ToLower(l.Format) {
	case "json", "text":
		return nil
	}
	return fmt.Errorf("unknown format %q (want json or text)", l.Format)
}
