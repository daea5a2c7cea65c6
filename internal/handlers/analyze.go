package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"tokenpulse/internal/sentiment"
	"tokenpulse/internal/twitter"
	"tokenpulse/internal/types"
)

const noDataAnalysis = "No tweets found for this contract address. This could indicate low social media presence."

// AnalyzeHandler handles POST /analyze requests: retrieval, then sentiment
// analysis, then the final JSON contract.
type AnalyzeHandler struct {
	Search  twitter.Searcher
	Analyze sentiment.Analyzer
}

func (h AnalyzeHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var req types.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ContractAddress == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error": "Contract address is required",
		})
		return
	}

	slog.Info("[Analyze] analyzing sentiment", slog.String("contract_address", req.ContractAddress))

	posts, err := h.Search(r.Context(), req.ContractAddress)
	if err != nil {
		// Retrieval failures degrade to the no-data result rather than
		// failing the request.
		slog.Warn("[Analyze] retrieval failed, treating as no data", slog.String("error", err.Error()))
		posts = nil
	}
	if len(posts) == 0 {
		writeJSON(w, http.StatusOK, noDataResult())
		return
	}

	slog.Info("[Analyze] found posts", slog.Int("count", len(posts)))

	result, err := h.Analyze(r.Context(), posts, req.ContractAddress)
	if err != nil {
		slog.Error("[Analyze] sentiment analysis failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error":   "Failed to analyze sentiment",
			"details": err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// noDataResult is the canned neutral response for zero retrieved posts. It is
// a designed outcome, not an error.
func noDataResult() types.SentimentResult {
	score := 5.0
	return types.SentimentResult{
		Score:         &score,
		Analysis:      noDataAnalysis,
		Narrative:     nil,
		NotableTweets: []types.Highlight{},
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
