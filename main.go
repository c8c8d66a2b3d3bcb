package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"taskboard/internal/config"
	"taskboard/internal/handlers"
	"taskboard/internal/logging"
	"taskboard/internal/store"
)

func main() {
	// Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Logger
	logger, err := logging.Setup(os.Stdout, cfg.Server.LogLevel)
	if err != nil {
		log.Fatalf("Failed to set up logger: %v", err)
	}

	// Initialize store with sample data
	s := store.NewSeededStore()

	// Initialize handlers
	h := handlers.New(s, logger)

	// Create router
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recoverer)
	r.Use(logging.RequestLogger(logger))
	r.Use(logging.BodyLogger(logger))
	r.Use(handlers.AllowAllCORS)

	// User API routes
	r.Get("/api/users", h.GetUsers)
	r.Get("/api/users/{id}", h.GetUserByID)
	r.Post("/api/users", h.CreateUser)

	// Task API routes
	r.Get("/api/tasks", h.GetTasks)
	r.Post("/api/tasks", h.CreateTask)
	r.Put("/api/tasks/{id}", h.UpdateTask)

	// Stats
	r.Get("/api/stats", h.GetStats)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Start server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Info("starting server", "addr", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
