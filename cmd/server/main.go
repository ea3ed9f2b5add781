package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/yegors/seat-side/internal/advisor"
	"github.com/yegors/seat-side/internal/airports"
	"github.com/yegors/seat-side/internal/api"
	"github.com/yegors/seat-side/internal/config"
	"github.com/yegors/seat-side/internal/seating"
	"github.com/yegors/seat-side/internal/storage/sqlite"
	"github.com/yegors/seat-side/internal/websocket"
	"github.com/yegors/seat-side/pkg/logger"
)

var (
	// Version is injected at build time
	Version = "dev"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "", "Path to configuration file (optional - will search in configs/ and root directory)")
	flag.Parse()

	// Load configuration with fallback logic
	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	// Create logger
	log, err := logger.New(logger.Config{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		FilePath:   cfg.Logging.FilePath,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Compress:   cfg.Logging.Compress,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("Starting seat-side server",
		logger.String("version", Version),
		logger.String("config_path", *configPath),
	)

	// Load the airport catalog
	catalog, err := airports.Load(cfg.Catalog.Path, log)
	if err != nil {
		log.Error("Failed to load airport catalog", logger.Error(err), logger.String("path", cfg.Catalog.Path))
		os.Exit(1)
	}

	// Create history storage (optional)
	var history *sqlite.HistoryStorage
	var recorder advisor.HistoryRecorder
	if cfg.Storage.HistoryEnabled {
		if dir := filepath.Dir(cfg.Storage.SQLitePath); dir != "" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				log.Error("Failed to create database directory", logger.Error(err), logger.String("path", dir))
				os.Exit(1)
			}
		}

		history, err = sqlite.NewHistoryStorage(cfg.Storage.SQLitePath, cfg.Storage.MaxHistoryInAPI, log)
		if err != nil {
			log.Error("Failed to create SQLite storage", logger.Error(err))
			os.Exit(1)
		}
		defer history.Close()
		recorder = history
		log.Info("Recording query history", logger.String("path", cfg.Storage.SQLitePath))
	} else {
		log.Info("Query history disabled in configuration")
	}

	engine := seating.NewEngine(seating.Options{
		MagneticVariation: cfg.Recommend.MagneticVariation,
	}, log)

	service := advisor.NewService(
		airports.NewLookup(catalog),
		engine,
		recorder,
		cfg.Recommend.PathPoints,
		log,
	)

	// Create WebSocket server and route recommendation requests to the advisor
	wsServer := websocket.NewServer(log)
	wsServer.SetMessageHandler(advisor.NewWebSocketHandler(service, log))
	service.SetBroadcaster(wsServer)
	go wsServer.Run()

	// Create API router
	router := api.NewRouter(service, history, cfg, log, wsServer)

	// --- Setup for multiple HTTP servers ---
	var servers []*http.Server
	allPorts := []int{cfg.Server.Port}
	if len(cfg.Server.AdditionalPorts) > 0 {
		allPorts = append(allPorts, cfg.Server.AdditionalPorts...)
	}

	log.Info("Configured listener ports", logger.Any("ports", allPorts))

	handler := router.Routes()
	for _, port := range allPorts {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, port)
		server := &http.Server{
			Addr:         addr,
			Handler:      handler,
			ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSecs) * time.Second,
			WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSecs) * time.Second,
			IdleTimeout:  time.Duration(cfg.Server.IdleTimeoutSecs) * time.Second,
		}
		servers = append(servers, server)

		go func(s *http.Server) {
			log.Info("Starting HTTP server", logger.String("addr", s.Addr))
			if err := s.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Error("HTTP server error on startup", logger.String("addr", s.Addr), logger.Error(err))
			}
		}(server)
	}

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	wsServer.Shutdown()

	log.Info("Shutting down HTTP servers...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	var wg sync.WaitGroup
	for _, s := range servers {
		wg.Add(1)
		go func(srv *http.Server) {
			defer wg.Done()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error("HTTP server shutdown error", logger.String("addr", srv.Addr), logger.Error(err))
			} else {
				log.Info("HTTP server shutdown complete", logger.String("addr", srv.Addr))
			}
		}(s)
	}
	wg.Wait()

	log.Info("Server fully stopped")
}
