package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"nextstep/internal/catalog"
	"nextstep/internal/config"
	"nextstep/internal/handler"
	"nextstep/internal/middleware"
	"nextstep/internal/modes"
	"nextstep/internal/repository/sqlite"
	journalSvc "nextstep/internal/service/journal"
	"nextstep/internal/service/journal/providers/openai"
	profileSvc "nextstep/internal/service/profile"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
	)

	// The provider credential lives only in this process; absence is fatal.
	if cfg.OpenAIAPIKey == "" {
		log.Fatal("OPENAI_API_KEY is required")
	}

	// Mode registry (embedded system instructions)
	registry, err := modes.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to load mode registry: %v", err)
	}

	// Completion provider
	provider, err := openai.NewProvider(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	if err != nil {
		log.Fatalf("Failed to create completion provider: %v", err)
	}

	// Catalog data (embedded, loaded whole into memory)
	catalogStore, err := catalog.Load()
	if err != nil {
		log.Fatalf("Failed to load catalog data: %v", err)
	}

	// Goal store (SQLite)
	goalStore, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open goal store: %v", err)
	}
	defer goalStore.Close()

	// Services
	relayService := journalSvc.NewRelayService(provider, registry, cfg.UpstreamTimeout, logger)
	goalService := profileSvc.NewGoalService(goalStore, logger)

	// Handlers
	journalHandler := handler.NewJournalHandler(relayService, logger)
	catalogHandler := handler.NewCatalogHandler(catalogStore, logger)
	profileHandler := handler.NewProfileHandler(goalService, logger)

	logger.Info("services initialized", "provider", provider.Name(), "db_path", cfg.DBPath)

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", journalHandler.HealthCheck)

	// Journal relay
	mux.HandleFunc("POST /api/chat", journalHandler.Chat)

	// Catalog routes
	mux.HandleFunc("GET /api/careers", catalogHandler.ListCareers)
	mux.HandleFunc("GET /api/internships", catalogHandler.ListInternships)
	mux.HandleFunc("GET /api/courses", catalogHandler.ListCourses)
	mux.HandleFunc("GET /api/clubs", catalogHandler.ListClubs)
	mux.HandleFunc("GET /api/feed", catalogHandler.ListFeed)

	// Profile routes
	mux.HandleFunc("GET /api/goals", profileHandler.ListGoals)
	mux.HandleFunc("POST /api/goals", profileHandler.CreateGoal)
	mux.HandleFunc("PATCH /api/goals/{id}", profileHandler.UpdateGoal)
	mux.HandleFunc("DELETE /api/goals/{id}", profileHandler.DeleteGoal)
	mux.HandleFunc("GET /api/profile/stats", profileHandler.GetStats)
	mux.HandleFunc("PUT /api/profile/stats", profileHandler.UpdateStats)

	// Build middleware chain (applied in reverse order; they wrap each other)
	origins := strings.Split(cfg.CORSOrigins, ",")

	var h http.Handler = mux
	h = middleware.OriginAllowlist(origins)(h)
	h = middleware.Recovery(logger)(h)

	// CORS - outermost so OPTIONS pre-flight requests are handled first
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	h = corsHandler.Handler(h)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.UpstreamTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
