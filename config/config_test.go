package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("STORE_PREFIX", "")
	cfg := Load()
	assert.Equal(t, "memory", cfg.StoreDriver)
	assert.Equal(t, "app:", cfg.StorePrefix)
	assert.False(t, cfg.RabbitMQEnabled)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
}

func TestCORSOriginsDefault(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	assert.Equal(t, []string{DefaultCORSOrigin}, Load().CORSOrigins())
}

func TestLoadOverridesAndFallbacks(t *testing.T) {
	t.Setenv("STORE_DRIVER", "Redis")
	t.Setenv("RATE_LIMIT_MAX", "not-a-number")
	t.Setenv("CORS_ALLOWED_ORIGINS", " http://a.test , ,http://b.test")
	cfg := Load()
	assert.Equal(t, "redis", cfg.StoreDriver)
	assert.Equal(t, 120, cfg.RateLimitMax)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins())
}
