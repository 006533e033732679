package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"ytkeypoints/internal/keypoints"
	"ytkeypoints/internal/youtube"
)

// Config は起動時に一度だけ読み込む設定
type Config struct {
	Port            string
	Debug           bool
	ShutdownTimeout time.Duration

	GroqAPIKey       string
	GroqAPIURL       string
	KeyPointsTimeout time.Duration

	TranscriptTimeout time.Duration

	LogLevel  string
	LogFormat string
	LogFile   string
}

// Load は .env（あれば）と環境変数から設定を読み込む
func Load() (*Config, error) {
	// .envファイルを読み込み（存在しない場合はスキップ）
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "5000")
	v.SetDefault("DEBUG", false)
	v.SetDefault("SHUTDOWN_TIMEOUT", 10*time.Second)
	v.SetDefault("GROQ_API_KEY", "")
	v.SetDefault("GROQ_API_URL", keypoints.DefaultEndpoint)
	v.SetDefault("KEYPOINTS_TIMEOUT", keypoints.DefaultTimeout)
	v.SetDefault("TRANSCRIPT_TIMEOUT", youtube.DefaultTimeout)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("LOG_FILE", "")

	cfg := &Config{
		Port:              v.GetString("PORT"),
		Debug:             v.GetBool("DEBUG"),
		ShutdownTimeout:   v.GetDuration("SHUTDOWN_TIMEOUT"),
		GroqAPIKey:        v.GetString("GROQ_API_KEY"),
		GroqAPIURL:        v.GetString("GROQ_API_URL"),
		KeyPointsTimeout:  v.GetDuration("KEYPOINTS_TIMEOUT"),
		TranscriptTimeout: v.GetDuration("TRANSCRIPT_TIMEOUT"),
		LogLevel:          v.GetString("LOG_LEVEL"),
		LogFormat:         v.GetString("LOG_FORMAT"),
		LogFile:           v.GetString("LOG_FILE"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate は設定値を検証する
// GROQ_API_KEY は検証しない（未設定ならリクエスト時に失敗する）
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("server port is required")
	}
	if c.GroqAPIURL == "" {
		return errors.New("GROQ_API_URL is required")
	}
	if c.ShutdownTimeout <= 0 {
		return errors.New("shutdown timeout must be greater than 0")
	}
	if c.KeyPointsTimeout <= 0 {
		return errors.New("key points timeout must be greater than 0")
	}
	if c.TranscriptTimeout <= 0 {
		return errors.New("transcript timeout must be greater than 0")
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return errors.Errorf("unknown log format %q", c.LogFormat)
	}
	return nil
}

// KeyPoints は要約クライアント用の設定を返す
func (c *Config) KeyPoints() keypoints.Config {
	return keypoints.Config{
		Endpoint: c.GroqAPIURL,
		APIKey:   c.GroqAPIKey,
		Timeout:  c.KeyPointsTimeout,
	}
}
