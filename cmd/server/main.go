package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/calvinwijaya/three-card-poker-be/internal/api"
	"github.com/calvinwijaya/three-card-poker-be/internal/config"
	"github.com/calvinwijaya/three-card-poker-be/internal/db"
	"github.com/calvinwijaya/three-card-poker-be/internal/logging"
	"github.com/calvinwijaya/three-card-poker-be/internal/store"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.New("info").Fatal("Failed to load config", "error", err)
	}

	logger := logging.New(cfg.Log.Level)

	// Create data directory if it doesn't exist
	dataDir := filepath.Dir(cfg.Database.Path)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		logger.Fatal("Failed to create data directory", "error", err)
	}

	// Open the database; fall back to in-memory history when it fails
	var roundStore store.Store
	database, err := db.NewDatabase(cfg.Database.Path)
	if err != nil {
		logger.Warn("Failed to open database, continuing without persistence", "error", err)
		database = nil
		roundStore = store.NewMemoryStore()
	} else {
		logger.Info("Database initialized", "path", cfg.Database.Path)
		defer database.Close()
		roundStore = store.NewDatabaseStore(database)
	}

	// Session registry; the observer mirrors the old server console log
	registry := api.NewRegistry(roundStore, cfg.Game.StartingCash, logger)
	registry.SetObserver(func(event, sessionID string, sessions int) {
		logger.Info("Session "+event, "session", sessionID[:8], "active", sessions)
	})

	// Set up router
	handlers := api.NewHandlers(roundStore, database, registry)
	r := mux.NewRouter()
	handlers.RegisterRoutes(r)

	// Request logging middleware
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, req)
			logger.Debug("Request", "method", req.Method, "uri", req.RequestURI, "duration", time.Since(start))
		})
	})

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.Server.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	// No read/write timeouts: websocket sessions are long-lived
	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           c.Handler(r),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("Starting server", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server error", "error", err)
		}
	}()

	// Graceful shutdown: close every session, then stop the listener
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down server")
	registry.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
}
