package main

import (
	"log/slog"
	"net/http"
	"os"

	"tokenpulse/internal/config"
	"tokenpulse/internal/handlers"
	"tokenpulse/internal/httpserver"
	"tokenpulse/internal/logging"
	"tokenpulse/internal/sentiment"
	"tokenpulse/internal/twitter"
)

func main() {
	config.LoadEnv()
	logging.InitLogger()

	cfg := config.FromEnv()

	handler := handlers.AnalyzeHandler{
		Search:  twitter.NewSearcher(cfg),
		Analyze: sentiment.NewAnalyzer(sentiment.NewInvoker(cfg)),
	}

	srv := httpserver.NewServer(cfg.Port, handler)
	slog.Info("[Server] listening",
		slog.String("port", cfg.Port),
		slog.Bool("search_api_key_set", cfg.SearchAPIKey != ""),
		slog.Bool("model_api_key_set", cfg.ModelAPIKey != ""))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("[Server] server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
