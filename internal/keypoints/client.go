// Package keypoints は Groq のチャットモデルで字幕テキストの要点を生成する
package keypoints

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultEndpoint は Groq の chat completions エンドポイント
	DefaultEndpoint = "https://api.groq.com/openai/v1/chat/completions"
	// DefaultTimeout は要点生成リクエストのタイムアウト
	DefaultTimeout = 30 * time.Second

	// プロンプトは字幕テキストの前に付ける
	promptPrefix = "beri poin penting: "
)

var (
	// ErrUnavailable はモデルから要点が得られなかったときのエラー
	ErrUnavailable = errors.New("key points unavailable")
	// ErrInvalidModel は許可リスト外のモデルを指定したときのエラー
	ErrInvalidModel = errors.New("invalid model")
)

// Config は Client の設定
type Config struct {
	Endpoint string
	APIKey   string
	Timeout  time.Duration
}

// Client は OpenAI 互換の chat completions API クライアント
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	log        logrus.FieldLogger
}

// NewClient は新しい Client を作成
// APIキーが空でも作成でき、その場合は上流で拒否される
func NewClient(cfg Config, log logrus.FieldLogger) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Client{
		endpoint:   cfg.Endpoint,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        log,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Summarize は字幕テキストの要点を返す
// 字幕は分割せずそのまま送る。モデルが許可リスト外ならリクエストしない
func (c *Client) Summarize(ctx context.Context, transcript, model string) (string, error) {
	if !IsAllowedModel(model) {
		return "", errors.Wrapf(ErrInvalidModel, "model %q", model)
	}

	log := c.log.WithFields(logrus.Fields{
		"model":             model,
		"transcript_length": len(transcript),
	})

	content, err := c.complete(ctx, model, promptPrefix+transcript)
	if err != nil {
		log.WithError(err).Error("Key points request failed")
		return "", errors.Wrap(ErrUnavailable, err.Error())
	}
	return content, nil
}

// complete は chat completions を1回呼び出し、最初の choice の本文を返す
func (c *Client) complete(ctx context.Context, model, prompt string) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model:    model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", errors.Wrap(err, "encode request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", errors.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "API request error")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "read response")
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", errors.Errorf("API returned status %d: %s", resp.StatusCode, truncate(body, 512))
	}

	var out chatResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", errors.Wrap(err, "JSON decode error")
	}
	if len(out.Choices) == 0 {
		return "", errors.New("response has no choices")
	}
	return out.Choices[0].Message.Content, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
