package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/meur/pokedex/internal/api"
	"github.com/meur/pokedex/internal/config"
	"github.com/meur/pokedex/internal/logging"
	"github.com/meur/pokedex/internal/pokeapi"
	"github.com/meur/pokedex/internal/pokedex"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// Parse flags
	port := flag.String("port", cfg.Port, "Server port")
	baseURL := flag.String("api", cfg.BaseURL, "PokeAPI base URL")
	pageSize := flag.Int("page-size", cfg.PageSize, "Default list page size")
	concurrency := flag.Int("concurrency", cfg.FetchConcurrency, "Max concurrent detail requests (0 = unbounded)")
	flag.Parse()

	logger, err := logging.Setup(os.Stdout, cfg.LogLevel, false)
	if err != nil {
		logger.Warn("Unknown log level, using info", "error", err)
	}

	client := pokeapi.New(*baseURL, pokeapi.WithTimeout(cfg.HTTPTimeout))
	dex := pokedex.NewService(client, client, pokedex.Options{
		PageSize:         *pageSize,
		FetchConcurrency: *concurrency,
		Logger:           logger,
	})

	srv := &http.Server{
		Addr:              ":" + *port,
		Handler:           api.New(dex, cfg.AllowedOrigins),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Shutdown failed", "error", err)
		}
	}()

	logger.Info("🚀 Pokedex API starting", "addr", "http://localhost:"+*port)
	logger.Info("📦 PokeAPI", "base_url", client.BaseURL(), "page_size", dex.PageSize())

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("👋 Server stopped")
}
