package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"chat-server/internal/config"
	"chat-server/internal/domain/chat"
	"chat-server/internal/domain/message"
	"chat-server/internal/domain/room"
	"chat-server/internal/infrastructure/hashing"
	"chat-server/internal/infrastructure/logger"
	"chat-server/internal/infrastructure/observability"
	"chat-server/internal/infrastructure/store"
	"chat-server/internal/interfaces/httpserver"
	"chat-server/internal/interfaces/httpserver/handlers"
	"chat-server/internal/interfaces/wsserver"
)

// Application holds the main application components.
type Application struct {
	httpServer *httpserver.HTTPServer
	log        zerolog.Logger
}

// NewApplication creates a new application instance.
func NewApplication(httpServer *httpserver.HTTPServer, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		log:        log,
	}
}

// Start runs the application (blocks until context cancelled).
func (a *Application) Start(ctx context.Context) error {
	return a.httpServer.Run(ctx)
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Setup observability
	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("failed to shutdown telemetry")
		}
	}()

	// Initialize stores: SQLite when a database path is configured,
	// in-memory otherwise.
	var (
		messages  message.Store
		directory room.Directory
	)
	if cfg.DatabasePath != "" {
		db, err := store.Open(ctx, cfg.DatabasePath, log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open database")
		}
		messages = store.NewGormMessageStore(db)
		directory = store.NewGormDirectory(db)
	} else {
		messages = store.NewMemoryMessageStore()
		directory = store.NewMemoryDirectory()
		log.Warn().Msg("no database path configured, using in-memory stores")
	}

	// Initialize the realtime core
	registry := chat.NewRegistry()
	broadcaster := chat.NewBroadcaster(registry, log)

	// Initialize the room directory service and its password gate
	hasher := hashing.NewBcrypt(cfg.BcryptCost)
	roomService := room.NewService(directory, messages, registry, hasher, log)

	// Initialize transports
	wsHandler := wsserver.New(cfg, log, messages, registry, broadcaster)
	handlerProvider, err := handlers.NewProvider(cfg, log, roomService)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize handlers")
	}
	httpServer := httpserver.New(cfg, log, handlerProvider, wsHandler)

	app := NewApplication(httpServer, log)

	log.Info().
		Str("service", cfg.ServiceName).
		Int("port", cfg.HTTPPort).
		Str("environment", cfg.Environment).
		Msg("starting application")

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

func loadEnvFiles() {
	paths := []string{".env", "../.env", "../../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
