package sentiment

import (
	"fmt"
	"strconv"
	"strings"

	"tokenpulse/internal/types"
)

const systemPrompt = `You are a crypto sentiment analyst. Analyze the provided tweets about the token and provide:
1. A sentiment score from 0-10 (0 = extremely bearish, 5 = neutral, 10 = extremely bullish)
2. A concise analysis (2-3 sentences max)
3. The token's narrative/story if you can identify it (e.g., "AI agent", "meme coin", "DeFi protocol", "community takeover", "first of something", etc.)
4. Select 1-2 of the most notable/representative tweets to highlight (return their IDs)

CRITICAL FILTERING RULES - IGNORE these types of tweets for both your analysis and for the highlights:
- Tweets with more than 1 hashtag (spam indicator)
- Engagement bait tweets (e.g., "DM for alpha", "Follow for signals", "Join our group")
- Generic promotional spam with contract addresses
- AI-generated content with no genuine insight
- Tweets that just paste contract addresses without meaningful discussion
- Any tweet asking users to DM, follow, or join for investment advice
- Tweets with obvious pump/dump language without substance

Focus ONLY on genuine sentiment from credible sources with real analysis or community discussion.

For the narrative, look for common themes, use cases, or stories being told about the token. If no clear narrative emerges, return null.

Return your response in this exact JSON format:
{
  "score": <number 0-10>,
  "analysis": "<your analysis>",
  "narrative": "<token narrative or null if unclear>",
  "notableTweetIds": ["<tweet_id_1>", "<tweet_id_2>"]
}`

// BuildPrompts renders the fixed system prompt and the post-bearing user
// prompt. Display numbering is 1-indexed; the parenthesized ID is the join
// key the model echoes back in notableTweetIds.
func BuildPrompts(posts []types.Post, contractAddress string) (string, string) {
	var b strings.Builder
	fmt.Fprintf(&b, "Contract Address: %s\n\nTweets:\n", contractAddress)
	for i, p := range posts {
		if i > 0 {
			b.WriteString("\n---\n")
		}
		fmt.Fprintf(&b, "\nTweet %d (ID: %s):\nAuthor: %s (%d followers)\nContent: %s\n",
			i+1, postID(p, i), p.Author, p.Followers, p.Text)
	}
	b.WriteString("\nAnalyze the sentiment and select the most notable tweets.")

	return systemPrompt, b.String()
}

// postID is the identifier a post carries through the prompt and back out of
// the model: its source ID, or its 0-based position when the source had none.
func postID(p types.Post, idx int) string {
	if p.ID != "" {
		return p.ID
	}
	return strconv.Itoa(idx)
}
