package sentiment

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"tokenpulse/internal/config"
)

// Timeout for individual model API requests.
const modelRequestTimeout = 60 * time.Second

const modelTemperature = 0.7

// ErrNoCredentials is returned when the model API key is not configured. This
// is the one hard failure: no sentiment call is possible at all without it.
var ErrNoCredentials = errors.New("model API key not configured")

// BackendError wraps a transport or API failure from the model provider.
type BackendError struct {
	Err error
}

func (e *BackendError) Error() string { return fmt.Sprintf("model backend: %v", e.Err) }

func (e *BackendError) Unwrap() error { return e.Err }

// Invoker sends a system and a user prompt to the model backend and returns
// its raw text output.
type Invoker func(ctx context.Context, systemPrompt, userPrompt string) (string, error)

// NewInvoker returns an Invoker backed by an OpenAI-compatible chat
// completions endpoint. One blocking call per invocation, no retries.
func NewInvoker(cfg config.Config) Invoker {
	clientCfg := openai.DefaultConfig(cfg.ModelAPIKey)
	clientCfg.BaseURL = cfg.ModelBaseURL
	clientCfg.HTTPClient = &http.Client{Timeout: modelRequestTimeout}
	client := openai.NewClientWithConfig(clientCfg)

	return func(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
		if cfg.ModelAPIKey == "" {
			return "", ErrNoCredentials
		}

		resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:       cfg.Model,
			Temperature: modelTemperature,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: userPrompt},
			},
		})
		if err != nil {
			return "", &BackendError{Err: err}
		}
		if len(resp.Choices) == 0 {
			return "", &BackendError{Err: errors.New("empty completion response")}
		}

		return resp.Choices[0].Message.Content, nil
	}
}
