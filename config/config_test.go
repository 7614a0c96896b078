package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvAsDuration(t *testing.T) {
	t.Setenv("TEST_TIMEOUT", "15s")
	assert.Equal(t, 15*time.Second, getEnvAsDuration("TEST_TIMEOUT", time.Second))

	t.Setenv("TEST_TIMEOUT", "30")
	assert.Equal(t, 30*time.Second, getEnvAsDuration("TEST_TIMEOUT", time.Second))

	t.Setenv("TEST_TIMEOUT", "soon")
	assert.Equal(t, time.Second, getEnvAsDuration("TEST_TIMEOUT", time.Second))
}

func TestGetEnvFallbacks(t *testing.T) {
	t.Setenv("TEST_INT", "x")
	assert.Equal(t, 5, getEnvAsInt("TEST_INT", 5))

	t.Setenv("TEST_BOOL", "true")
	assert.True(t, getEnvAsBool("TEST_BOOL", false))

	assert.Equal(t, "fallback", getEnv("TEST_UNSET_KEY", "fallback"))
}

func TestLoadAllowedOrigins(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", "https://jiwoo.example.com, https://admin.jiwoo.example.com,")
	loadAllowedOrigins()
	assert.Len(t, allowedOrigins, 2)
	assert.True(t, allowedOrigins["https://admin.jiwoo.example.com"])

	t.Setenv("ALLOWED_ORIGINS", "")
	loadAllowedOrigins()
	assert.True(t, allowedOrigins["http://localhost:3000"])
}

func TestRefreshTokenCookie(t *testing.T) {
	cookie := GetRefreshTokenCookie("token")
	assert.Equal(t, "refresh_token", cookie.Name)
	assert.True(t, cookie.HTTPOnly)
	assert.Equal(t, "/", cookie.Path)
}
