package twitter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"tokenpulse/internal/config"
	"tokenpulse/internal/types"

	"github.com/hashicorp/go-retryablehttp"
)

// ProviderError describes a failed search provider call. The analyze flow
// treats any provider error as zero posts rather than failing the request.
type ProviderError struct {
	Status int
	Err    error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("search provider: %v", e.Err)
	}
	return fmt.Sprintf("search provider: status %d", e.Status)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// Searcher returns recent posts mentioning the query string.
type Searcher func(ctx context.Context, query string) ([]types.Post, error)

// NewSearcher returns a Searcher that queries the search provider with
// bearer-token auth. Each call makes exactly one attempt; no retries.
func NewSearcher(cfg config.Config) Searcher {
	client := retryablehttp.NewClient()
	client.Logger = nil
	client.RetryMax = 0

	return func(ctx context.Context, query string) ([]types.Post, error) {
		if cfg.SearchAPIKey == "" {
			slog.Error("[TwitterSearch] search API key not configured")
			return nil, &ProviderError{Err: errors.New("search API key not configured")}
		}

		endpoint := fmt.Sprintf("%s/search?query=%s", cfg.SearchBaseURL, url.QueryEscape(query))
		req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, &ProviderError{Err: err}
		}
		req.Header.Set("Authorization", "Bearer "+cfg.SearchAPIKey)

		slog.Info("[TwitterSearch] fetching posts", slog.String("query", query))
		resp, err := client.Do(req)
		if err != nil {
			slog.Error("[TwitterSearch] request failed", slog.String("error", err.Error()))
			return nil, &ProviderError{Err: err}
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			body, _ := io.ReadAll(resp.Body)
			slog.Error("[TwitterSearch] provider error",
				slog.Int("status", resp.StatusCode),
				slog.String("body", string(body)))
			return nil, &ProviderError{Status: resp.StatusCode}
		}

		posts, err := decodePosts(resp.Body)
		if err != nil {
			slog.Error("[TwitterSearch] failed to decode response", slog.String("error", err.Error()))
			return nil, &ProviderError{Err: err}
		}

		slog.Info("[TwitterSearch] received posts", slog.Int("count", len(posts)))
		return posts, nil
	}
}

// wirePost mirrors the provider's response items. IDs arrive as strings or
// numbers depending on the source, so the field is decoded loosely.
type wirePost struct {
	ID      any    `json:"id"`
	Text    string `json:"text"`
	URL     string `json:"url"`
	Profile struct {
		Username       string `json:"username"`
		FollowersCount int    `json:"followersCount"`
	} `json:"profile"`
}

func decodePosts(r io.Reader) ([]types.Post, error) {
	var payload struct {
		Data []wirePost `json:"data"`
	}
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&payload); err != nil {
		return nil, err
	}

	posts := make([]types.Post, 0, len(payload.Data))
	for _, w := range payload.Data {
		author := w.Profile.Username
		if author == "" {
			author = "Unknown"
		}
		posts = append(posts, types.Post{
			ID:        stringifyID(w.ID),
			Author:    author,
			Text:      w.Text,
			Followers: w.Profile.FollowersCount,
			URL:       w.URL,
		})
	}
	return posts, nil
}

func stringifyID(v any) string {
	switch id := v.(type) {
	case string:
		return id
	case json.Number:
		return id.String()
	default:
		return ""
	}
}
