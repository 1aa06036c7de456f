package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"psp.com/discussion-picker/backend/internal/config"
	"psp.com/discussion-picker/backend/internal/questionbank"
	"psp.com/discussion-picker/backend/internal/scraper"
)

func main() {
	cfg, err := config.Load(config.Path())
	if err != nil {
		slog.Error("failed to load config", "path", config.Path(), "error", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	bank, err := loadBank(cfg)
	if err != nil {
		slog.Error("failed to load questions", "source", cfg.Source(), "error", err)
		os.Exit(1)
	}
	slog.Info("questions loaded", "source", cfg.Source(), "count", bank.Len(), "weeks", len(bank.Weeks()))

	a := newApp(bank, cfg)
	r := a.routes(cfg.AllowedOrigins)

	addr := ":" + cfg.Port
	if cfg.TLSCert != "" {
		slog.Info("picker listening", "addr", addr, "tls", true)
		err = http.ListenAndServeTLS(addr, cfg.TLSCert, cfg.TLSKey, r)
	} else {
		slog.Info("picker listening", "addr", addr, "tls", false)
		err = http.ListenAndServe(addr, r)
	}
	slog.Error("server stopped", "error", err)
	os.Exit(1)
}

func loadBank(cfg config.Config) (*questionbank.Bank, error) {
	switch cfg.Source() {
	case config.SourceIndex:
		ctx, cancel := context.WithTimeout(context.Background(), 10*cfg.HTTPTimeout())
		defer cancel()
		client := &http.Client{Timeout: cfg.HTTPTimeout()}
		docs, err := scraper.FetchIndex(ctx, client, cfg.IndexURL)
		if err != nil {
			return nil, err
		}
		return questionbank.FromDocuments(docs)
	case config.SourceBank:
		return questionbank.LoadJSON(cfg.BankPath)
	default:
		return questionbank.LoadDir(os.DirFS(cfg.QuestionsDir), ".")
	}
}

// now is swapped in tests.
var now = time.Now
