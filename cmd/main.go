package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/discodex/bandcamp-discover/config"
	"github.com/discodex/bandcamp-discover/internal/browser"
	"github.com/discodex/bandcamp-discover/internal/gatherer"
	"github.com/discodex/bandcamp-discover/internal/store"
)

func main() {
	configPath := flag.String("config", "./config/config.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.Level(cfg.LogLevel)}))
	slog.SetDefault(logger)

	csvStore, err := store.NewCSV(cfg.OutputFile)
	if err != nil {
		slog.Error("Failed to open track store", "error", err)
		os.Exit(1)
	}

	session, err := browser.New(cfg.Headless, cfg.WaitTimeout())
	if err != nil {
		slog.Error("Failed to launch browser", "error", err)
		os.Exit(1)
	}

	g := gatherer.New(session, csvStore, cfg.SiteURL, cfg.TracksPerPage)
	if err := g.Run(context.Background()); err != nil {
		slog.Error("Discover session failed", "error", err)
		os.Exit(1)
	}
	g.Close()
}
