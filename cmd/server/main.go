package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"dutchpay/internal/api"
	"dutchpay/internal/auth"
	"dutchpay/internal/config"
	"dutchpay/internal/storage/sqlite"
	"dutchpay/pkg/logging"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	tokens := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)
	server := api.NewServer(store, tokens, cfg.CORSOrigins)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           server.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	slog.Info("Server starting", "address", cfg.HTTPAddress())
	if err := httpServer.ListenAndServe(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
