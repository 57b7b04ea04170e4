package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, SessionBackendMemory, cfg.Session.Backend)
	assert.Equal(t, 60*time.Second, cfg.Session.SweepEvery)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
	assert.False(t, cfg.DB.AutoMigrate)
}

func TestLoad_DesdeEntorno(t *testing.T) {
	t.Setenv("SESSION_BACKEND", "REDIS")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("DB_AUTO_MIGRATE", "true")
	t.Setenv("ENABLE_IP_RESTRICTIONS", "true")
	t.Setenv("ALLOWED_IPS", "10.0.0.0/8, 192.168.1.10 ,")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "120")
	t.Setenv("HTTP_READ_TIMEOUT_SECONDS", "5")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, SessionBackendRedis, cfg.Session.Backend)
	assert.Equal(t, "cache:6380", cfg.Redis.Addr())
	assert.True(t, cfg.DB.AutoMigrate)
	assert.Equal(t, []string{"10.0.0.0/8", "192.168.1.10"}, cfg.Security.AllowedIPs)
	assert.Equal(t, 120, cfg.Security.RateLimitPerMinute)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ReadTimeout)
}

func TestLoad_Invalido(t *testing.T) {
	t.Setenv("SESSION_BACKEND", "memcached")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_IPRestrictionsSinLista(t *testing.T) {
	t.Setenv("ENABLE_IP_RESTRICTIONS", "true")
	_, err := Load()
	assert.Error(t, err)
}

func TestDSN_EscapaPassword(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "cmms", Password: "p@ss:w/rd", DBName: "cmms", SSLMode: "disable"}
	assert.Equal(t, "postgres://cmms:p%40ss%3Aw%2Frd@db:5432/cmms?sslmode=disable", c.DSN())
	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}
