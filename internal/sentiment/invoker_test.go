package sentiment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tokenpulse/internal/config"
)

func TestInvokerMissingCredentials(t *testing.T) {
	invoke := NewInvoker(config.Config{ModelBaseURL: "http://localhost:0", Model: "test-model"})

	_, err := invoke(context.Background(), "system", "user")

	assert.ErrorIs(t, err, ErrNoCredentials)
}

func TestInvokerSendsPromptsAndReturnsText(t *testing.T) {
	var gotReq struct {
		Model       string  `json:"model"`
		Temperature float64 `json:"temperature"`
		Messages    []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "cmpl-1",
			"object": "chat.completion",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "{\"score\":7}"}, "finish_reason": "stop"}]
		}`))
	}))
	defer srv.Close()

	invoke := NewInvoker(config.Config{
		ModelAPIKey:  "test-key",
		ModelBaseURL: srv.URL,
		Model:        "test-model",
	})

	raw, err := invoke(context.Background(), "be an analyst", "here are tweets")

	require.NoError(t, err)
	assert.Equal(t, `{"score":7}`, raw)
	assert.Equal(t, "test-model", gotReq.Model)
	assert.InDelta(t, 0.7, gotReq.Temperature, 0.001)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Equal(t, "be an analyst", gotReq.Messages[0].Content)
	assert.Equal(t, "user", gotReq.Messages[1].Role)
	assert.Equal(t, "here are tweets", gotReq.Messages[1].Content)
}

func TestInvokerBackendFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "upstream exploded"}}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	invoke := NewInvoker(config.Config{
		ModelAPIKey:  "test-key",
		ModelBaseURL: srv.URL,
		Model:        "test-model",
	})

	_, err := invoke(context.Background(), "system", "user")

	var backendErr *BackendError
	require.ErrorAs(t, err, &backendErr)
}

func TestInvokerEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "cmpl-2", "object": "chat.completion", "choices": []}`))
	}))
	defer srv.Close()

	invoke := NewInvoker(config.Config{
		ModelAPIKey:  "test-key",
		ModelBaseURL: srv.URL,
		Model:        "test-model",
	})

	_, err := invoke(context.Background(), "system", "user")

	var backendErr *BackendError
	require.ErrorAs(t, err, &backendErr)
}
