package keypoints

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestSummarize(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"choices":[{"message":{"role":"assistant","content":"- point one\n- point two"}},{"message":{"content":"ignored"}}]}`)
	}))
	defer srv.Close()

	client := NewClient(Config{Endpoint: srv.URL, APIKey: "secret"}, quietLogger())
	out, err := client.Summarize(context.Background(), "some transcript", ModelLlama33Versatile)
	require.NoError(t, err)

	assert.Equal(t, "- point one\n- point two", out)
	assert.Equal(t, ModelLlama33Versatile, got.Model)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "user", got.Messages[0].Role)
	assert.Equal(t, "beri poin penting: some transcript", got.Messages[0].Content)
}

func TestSummarize_Unavailable(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		timeout time.Duration
		delay   time.Duration
	}{
		{name: "no choices", status: http.StatusOK, body: `{"id":"x"}`},
		{name: "empty choices", status: http.StatusOK, body: `{"choices":[]}`},
		{name: "malformed json", status: http.StatusOK, body: `{"choices":`},
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"error":{"message":"Invalid API Key"}}`},
		{name: "server error", status: http.StatusBadGateway, body: `bad gateway`},
		{name: "timeout", status: http.StatusOK, body: `{"choices":[]}`, timeout: 50 * time.Millisecond, delay: 500 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.delay > 0 {
					select {
					case <-time.After(tt.delay):
					case <-r.Context().Done():
						return
					}
				}
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			client := NewClient(Config{Endpoint: srv.URL, Timeout: tt.timeout}, quietLogger())
			out, err := client.Summarize(context.Background(), "text", DefaultModel)
			assert.Empty(t, out)
			assert.ErrorIs(t, err, ErrUnavailable)
		})
	}
}

func TestSummarize_InvalidModelMakesNoRequest(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	client := NewClient(Config{Endpoint: srv.URL}, quietLogger())
	_, err := client.Summarize(context.Background(), "text", "gpt-4o")

	assert.ErrorIs(t, err, ErrInvalidModel)
	assert.False(t, called)
}

func TestIsAllowedModel(t *testing.T) {
	for _, m := range Models() {
		assert.True(t, IsAllowedModel(m), m)
	}
	assert.Equal(t, DefaultModel, Models()[0])
	assert.False(t, IsAllowedModel(""))
	assert.False(t, IsAllowedModel("llama-3.1-8b-instant"))
}
