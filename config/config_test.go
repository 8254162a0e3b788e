package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("JWT_SECRET", "")

	cfg := Load()

	assert.Equal(t, "portfolio-api", cfg.AppName)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 720*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "devsecret", cfg.JWTSecret)
	assert.Equal(t, "blog_posts", cfg.ESPostsIndex)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "supersecret")
	t.Setenv("JWT_TTL", "24h")
	t.Setenv("DB_MAX_CONNS", "25")
	t.Setenv("MAIL_SEND_ENABLED", "true")

	cfg := Load()
	assert.Equal(t, "supersecret", cfg.JWTSecret)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, int32(25), cfg.DBMaxConns)
	assert.True(t, cfg.MailSendEnabled)
}

func TestLoadIgnoresBadValues(t *testing.T) {
	t.Setenv("JWT_TTL", "soon")
	t.Setenv("DB_MAX_CONNS", "lots")
	t.Setenv("MAIL_SEND_ENABLED", "yep")

	cfg := Load()
	assert.Equal(t, 720*time.Hour, cfg.TokenTTL)
	assert.Equal(t, int32(10), cfg.DBMaxConns)
	assert.False(t, cfg.MailSendEnabled)
}

func TestPostgresDSN(t *testing.T) {
	c := &Config{DBUser: "app", DBPassword: "pw", DBHost: "db", DBPort: "5433", DBName: "portfolio", DBSSLMode: "require"}
	assert.Equal(t, "postgres://app:pw@db:5433/portfolio?sslmode=require", c.PostgresDSN())
}

func TestCORSOrigins(t *testing.T) {
	c := &Config{CORSAllowedOrigins: "https://a.example, https://b.example ,,"}
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, c.CORSOrigins())

	empty := &Config{}
	assert.Empty(t, empty.CORSOrigins())
}
