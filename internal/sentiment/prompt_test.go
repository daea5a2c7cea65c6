package sentiment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"tokenpulse/internal/types"
)

func TestBuildPromptsSystem(t *testing.T) {
	system, _ := BuildPrompts(nil, "0xabc")

	// The schema and the filtering rules are the load-bearing parts of the
	// instruction template.
	assert.Contains(t, system, `"notableTweetIds"`)
	assert.Contains(t, system, `"score"`)
	assert.Contains(t, system, `"analysis"`)
	assert.Contains(t, system, `"narrative"`)
	assert.Contains(t, system, "CRITICAL FILTERING RULES")
	assert.Contains(t, system, "more than 1 hashtag")
	assert.Contains(t, system, "pump/dump")
}

func TestBuildPromptsUser(t *testing.T) {
	posts := []types.Post{
		{ID: "abc", Author: "alice", Text: "looking strong", Followers: 1200},
		{Author: "bob", Text: "no id on this one", Followers: 10},
	}

	_, user := BuildPrompts(posts, "0xdeadbeef")

	assert.True(t, strings.HasPrefix(user, "Contract Address: 0xdeadbeef\n"))
	// Display numbering is 1-indexed; missing source IDs fall back to the
	// 0-based position.
	assert.Contains(t, user, "Tweet 1 (ID: abc):")
	assert.Contains(t, user, "Tweet 2 (ID: 1):")
	assert.Contains(t, user, "Author: alice (1200 followers)")
	assert.Contains(t, user, "Content: looking strong")
	assert.Contains(t, user, "\n---\n")
	assert.Contains(t, user, "Analyze the sentiment and select the most notable tweets.")
}

func TestBuildPromptsSingleFullList(t *testing.T) {
	posts := make([]types.Post, 50)
	for i := range posts {
		posts[i] = types.Post{Author: "u", Text: "t"}
	}

	_, user := BuildPrompts(posts, "0xabc")

	// No token-budget trimming: every post is enumerated.
	assert.Equal(t, 49, strings.Count(user, "\n---\n"))
	assert.Contains(t, user, "Tweet 50 (ID: 49):")
}
