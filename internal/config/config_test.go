package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 60, cfg.MatchThreshold)
	assert.Equal(t, 15*time.Minute, cfg.JWTAccessExpiry)
	assert.Equal(t, 168*time.Hour, cfg.JWTRefreshExpiry)
	assert.Equal(t, 2*time.Second, cfg.ChatReplyDelay)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MATCH_THRESHOLD", "75")
	t.Setenv("CHAT_REPLY_DELAY", "500ms")
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()

	assert.Equal(t, 75, cfg.MatchThreshold)
	assert.Equal(t, 500*time.Millisecond, cfg.ChatReplyDelay)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("MATCH_THRESHOLD", "not-a-number")
	t.Setenv("JWT_ACCESS_EXPIRY", "soon")
	t.Setenv("LOG_LEVEL", "chatty")

	cfg := Load()

	assert.Equal(t, 60, cfg.MatchThreshold)
	assert.Equal(t, 15*time.Minute, cfg.JWTAccessExpiry)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost: "db", DBPort: "5432", DBUser: "app",
		DBPassword: "secret", DBName: "terrabuddy_db", DBSSLMode: "disable",
	}
	assert.Equal(t,
		"host=db user=app password=secret dbname=terrabuddy_db port=5432 sslmode=disable TimeZone=UTC",
		cfg.DSN())
}
