package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ytkeypoints/internal/keypoints"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "DEBUG", "SHUTDOWN_TIMEOUT", "GROQ_API_KEY", "GROQ_API_URL",
		"KEYPOINTS_TIMEOUT", "TRANSCRIPT_TIMEOUT", "LOG_LEVEL", "LOG_FORMAT", "LOG_FILE",
	} {
		// 空の環境変数は未設定として扱われる
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "", cfg.GroqAPIKey)
	assert.Equal(t, keypoints.DefaultEndpoint, cfg.GroqAPIURL)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 30*time.Second, cfg.KeyPointsTimeout)
	assert.Equal(t, time.Minute, cfg.TranscriptTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DEBUG", "true")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("GROQ_API_KEY", "gsk_test")
	t.Setenv("GROQ_API_URL", "http://localhost:9999/v1/chat/completions")
	t.Setenv("KEYPOINTS_TIMEOUT", "5s")
	t.Setenv("TRANSCRIPT_TIMEOUT", "15s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_FILE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, keypoints.Config{
		Endpoint: "http://localhost:9999/v1/chat/completions",
		APIKey:   "gsk_test",
		Timeout:  5 * time.Second,
	}, cfg.KeyPoints())
	assert.Equal(t, 15*time.Second, cfg.TranscriptTimeout)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Port:              "5000",
			GroqAPIURL:        keypoints.DefaultEndpoint,
			ShutdownTimeout:   time.Second,
			KeyPointsTimeout:  time.Second,
			TranscriptTimeout: time.Second,
			LogFormat:         "text",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"missing api key is fine", func(c *Config) { c.GroqAPIKey = "" }, false},
		{"no port", func(c *Config) { c.Port = "" }, true},
		{"no endpoint", func(c *Config) { c.GroqAPIURL = "" }, true},
		{"zero key points timeout", func(c *Config) { c.KeyPointsTimeout = 0 }, true},
		{"negative transcript timeout", func(c *Config) { c.TranscriptTimeout = -time.Second }, true},
		{"zero shutdown timeout", func(c *Config) { c.ShutdownTimeout = 0 }, true},
		{"bad log format", func(c *Config) { c.LogFormat = "xml" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
