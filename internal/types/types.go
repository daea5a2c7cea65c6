package types

// Post is one retrieved social-media item about a token. Posts are immutable
// once retrieved and live only for the duration of a single request.
type Post struct {
	ID        string
	Author    string
	Text      string
	Followers int
	URL       string
}

// Highlight is a post the model selected as notable, rendered in the final
// result.
type Highlight struct {
	ID     string `json:"id"`
	Author string `json:"author"`
	Text   string `json:"text"`
	URL    string `json:"url"`
}

// SentimentResult is the only structure crossing the system boundary to the
// presentation layer. Score is a pointer because the model may omit it; only
// the fallback and no-data paths fill in a neutral 5.
type SentimentResult struct {
	Score         *float64    `json:"score,omitempty"`
	Analysis      string      `json:"analysis"`
	Narrative     *string     `json:"narrative"`
	NotableTweets []Highlight `json:"notableTweets"`
}

// AnalysisRequest is the body of POST /analyze.
type AnalysisRequest struct {
	ContractAddress string `json:"contractAddress"`
}
