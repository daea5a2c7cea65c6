package sentiment

import (
	"context"

	"tokenpulse/internal/types"
)

// Analyzer produces a sentiment verdict for posts about a contract address.
type Analyzer func(ctx context.Context, posts []types.Post, contractAddress string) (types.SentimentResult, error)

// NewAnalyzer wires prompt building, model invocation, and normalization into
// a single call. Invocation errors propagate; malformed model output does not.
func NewAnalyzer(invoke Invoker) Analyzer {
	return func(ctx context.Context, posts []types.Post, contractAddress string) (types.SentimentResult, error) {
		system, user := BuildPrompts(posts, contractAddress)
		raw, err := invoke(ctx, system, user)
		if err != nil {
			return types.SentimentResult{}, err
		}
		return Normalize(raw, posts), nil
	}
}
