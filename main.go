package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/bookmakerhq/bookmaker/api"
	"github.com/bookmakerhq/bookmaker/datastore"
	"github.com/bookmakerhq/bookmaker/export"
	"github.com/bookmakerhq/bookmaker/generation"
	rh "github.com/bookmakerhq/bookmaker/route-handlers"
	"github.com/bookmakerhq/bookmaker/templates"
)

const (
	defaultPort        = "8080"
	defaultDatabaseURL = "user=postgres password=password dbname=bookmaker host=localhost port=5432 sslmode=disable"
	defaultGeminiModel = "gemini-2.0-flash"
	dbPingTimeout      = 5 * time.Second
	shutdownTimeout    = 15 * time.Second
	dbMaxOpenConns     = 25
	dbMaxIdleConns     = 25
	dbConnMaxLifetime  = 5 * time.Minute
)

type config struct {
	port         string
	databaseURL  string
	jwtSecret    string
	geminiAPIKey string
	geminiModel  string
}

func main() {
	cfg := loadConfig()

	db, err := setupDatabase(cfg.databaseURL)
	if err != nil {
		log.Fatalf("Database setup failed: %v", err)
	}
	defer db.Close()

	bookRepo := datastore.NewBookRepository(db)
	chapterRepo := datastore.NewChapterRepository(db)
	profileRepo := datastore.NewProfileRepository(db)
	exportHistoryRepo := datastore.NewExportHistoryRepository(db)

	// Export pipeline
	registry := templates.NewRegistry()
	sanitizer := export.NewSanitizer()
	assembler := export.NewAssembler(registry, sanitizer)
	renderer := export.NewRenderer()
	packager := export.NewEpubPackager(sanitizer)
	exporter := export.NewExporter(bookRepo, chapterRepo, exportHistoryRepo, registry, assembler, renderer, packager)

	generationService := setupGeneration(cfg, sanitizer)

	handlers := api.Handlers{
		Book:       rh.NewBookHandler(bookRepo),
		Chapter:    rh.NewChapterHandler(chapterRepo, bookRepo),
		Export:     rh.NewExportHandler(exporter, exportHistoryRepo),
		Template:   rh.NewTemplateHandler(registry),
		Profile:    rh.NewProfileHandler(profileRepo),
		Generation: rh.NewGenerationHandler(generationService),
	}

	router := api.SetupRoutes(handlers, []byte(cfg.jwtSecret))
	startServer(cfg.port, router)
}

func loadConfig() config {
	if err := godotenv.Load(); err != nil {
		log.Println("INFO: No .env file found, relying on environment variables.")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	dbURL := os.Getenv("DB_CONNECTION_STRING")
	if dbURL == "" {
		dbURL = defaultDatabaseURL
		log.Println("WARNING: DB_CONNECTION_STRING not set, using default local connection string.")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET not set. Refusing to start without a token signing secret.")
	}

	geminiAPIKey := os.Getenv("GEMINI_API_KEY")
	if geminiAPIKey == "" {
		log.Println("WARNING: GEMINI_API_KEY not set. Content generation endpoints will be unavailable.")
	}

	geminiModel := os.Getenv("GEMINI_MODEL")
	if geminiModel == "" {
		geminiModel = defaultGeminiModel
	}

	return config{
		port:         port,
		databaseURL:  dbURL,
		jwtSecret:    jwtSecret,
		geminiAPIKey: geminiAPIKey,
		geminiModel:  geminiModel,
	}
}

func setupDatabase(connStr string) (*sql.DB, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(dbMaxOpenConns)
	db.SetMaxIdleConns(dbMaxIdleConns)
	db.SetConnMaxLifetime(dbConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), dbPingTimeout)
	defer cancel()

	if err = db.PingContext(ctx); err != nil {
		db.Close() // Close unusable connection pool
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Database connection successful")
	return db, nil
}

// setupGeneration builds the Gemini-backed generation service, or returns
// nil when no API key is configured.
func setupGeneration(cfg config, sanitizer *export.Sanitizer) *generation.Service {
	if cfg.geminiAPIKey == "" {
		return nil
	}

	client, err := generation.NewClient(context.Background(), cfg.geminiAPIKey, cfg.geminiModel)
	if err != nil {
		log.Printf("WARNING: Failed to initialize Gemini client: %v. Content generation endpoints will be unavailable.", err)
		return nil
	}
	return generation.NewService(client, sanitizer)
}

func startServer(port string, router http.Handler) {
	server := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	shutdownSignal := make(chan os.Signal, 1)
	signal.Notify(shutdownSignal, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on port %s", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-shutdownSignal
	log.Println("Shutdown signal received, draining connections...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Graceful shutdown failed: %v", err)
	}
	log.Println("Server stopped")
}
