package sentiment

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"tokenpulse/internal/types"
)

const (
	maxHighlights      = 2
	fallbackExcerptLen = 200
)

// verdict is the shape the system prompt instructs the model to return.
// NotableTweetIDs is decoded loosely because models echo IDs back as strings
// or numbers interchangeably.
type verdict struct {
	Score           *float64 `json:"score"`
	Analysis        string   `json:"analysis"`
	Narrative       *string  `json:"narrative"`
	NotableTweetIDs []any    `json:"notableTweetIds"`
}

// ExtractJSON returns the greedy brace span of raw: the first '{' through the
// last '}'. The boolean is false when no such span exists.
func ExtractJSON(raw string) (string, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return raw[start : end+1], true
}

// Normalize turns raw model output into the SentimentResult contract. It
// never fails: output without a parseable JSON object resolves to the neutral
// fallback result. A parsed verdict that omits score keeps it unset; only the
// fallback path defaults to 5.
func Normalize(raw string, posts []types.Post) types.SentimentResult {
	span, ok := ExtractJSON(raw)
	if !ok {
		return fallbackResult(raw)
	}

	var v verdict
	dec := json.NewDecoder(strings.NewReader(span))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return fallbackResult(raw)
	}
	// The span must be exactly one JSON object. A stray later '}' in the raw
	// text leaves trailing tokens after the decoded value; that is a parse
	// failure, not a verdict.
	if _, err := dec.Token(); err != io.EOF {
		return fallbackResult(raw)
	}

	narrative := v.Narrative
	if narrative != nil && *narrative == "" {
		narrative = nil
	}

	return types.SentimentResult{
		Score:         v.Score,
		Analysis:      v.Analysis,
		Narrative:     narrative,
		NotableTweets: resolveHighlights(v.NotableTweetIDs, posts),
	}
}

// resolveHighlights maps the model's selected IDs back to full posts. Order
// follows the model's list, unknown and duplicate IDs are dropped silently,
// and the result is capped at two highlights.
func resolveHighlights(ids []any, posts []types.Post) []types.Highlight {
	highlights := make([]types.Highlight, 0, maxHighlights)
	seen := make(map[string]struct{}, len(ids))

	for _, rawID := range ids {
		if len(highlights) == maxHighlights {
			break
		}
		id := coerceID(rawID)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		for i, p := range posts {
			if postID(p, i) == id {
				highlights = append(highlights, toHighlight(p, i))
				break
			}
		}
	}
	return highlights
}

func toHighlight(p types.Post, idx int) types.Highlight {
	id := postID(p, idx)
	url := p.URL
	if url == "" {
		url = fmt.Sprintf("https://twitter.com/%s/status/%s", p.Author, id)
	}
	return types.Highlight{
		ID:     id,
		Author: p.Author,
		Text:   p.Text,
		URL:    url,
	}
}

func coerceID(v any) string {
	switch id := v.(type) {
	case string:
		return id
	case json.Number:
		return id.String()
	default:
		return ""
	}
}

func fallbackResult(raw string) types.SentimentResult {
	score := 5.0
	return types.SentimentResult{
		Score:         &score,
		Analysis:      truncate(raw, fallbackExcerptLen),
		Narrative:     nil,
		NotableTweets: []types.Highlight{},
	}
}

// truncate returns the first n characters of s without splitting a rune.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
