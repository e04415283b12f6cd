package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/keelridge/blankchart/internal/config"
	"github.com/keelridge/blankchart/internal/domain/chat"
	ideadomain "github.com/keelridge/blankchart/internal/domain/idea"
	"github.com/keelridge/blankchart/internal/domain/session"
	"github.com/keelridge/blankchart/internal/domain/transcript"
	"github.com/keelridge/blankchart/internal/infrastructure/anthropic"
	"github.com/keelridge/blankchart/internal/infrastructure/formrelay"
	"github.com/keelridge/blankchart/internal/infrastructure/logger"
	"github.com/keelridge/blankchart/internal/infrastructure/observability"
	idearepo "github.com/keelridge/blankchart/internal/infrastructure/repository/idea"
	"github.com/keelridge/blankchart/internal/infrastructure/sessionstore"
	"github.com/keelridge/blankchart/internal/interfaces/httpserver"
	"github.com/keelridge/blankchart/internal/interfaces/httpserver/handlers"
)

// @title Blank Chart API
// @version 1.0
// @description Idea submission chat and curator transcript service for Blank Chart, a Keel Ridge project.
// @BasePath /
type Application struct {
	httpServer *httpserver.HttpServer
	log        zerolog.Logger
}

func NewApplication(httpServer *httpserver.HttpServer, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		log:        log,
	}
}

func (a *Application) Start(ctx context.Context) error {
	return a.httpServer.Run(ctx)
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg)
	if err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown telemetry")
		}
	}()

	persona, err := chat.LoadPersona(cfg.PersonaFile)
	if err != nil {
		log.Fatal().Err(err).Msg("load persona prompt")
	}

	configured := strings.TrimSpace(cfg.AnthropicAPIKey) != ""
	if !configured {
		log.Warn().Msg("ANTHROPIC_API_KEY not set; chat relay will fail closed")
	}

	relay := chat.NewRelay(anthropic.NewClient(cfg), persona, configured, log)
	dispatcher := transcript.NewDispatcher(formrelay.NewClient(cfg), log)
	sessions := session.NewService(sessionstore.New(cfg.SessionTTL), relay, dispatcher, log)
	ideas := ideadomain.NewService(idearepo.NewInMemoryRepository(), log)

	handlerProvider := handlers.NewProvider(relay, dispatcher, sessions, ideas)
	httpServer := httpserver.New(cfg, log, handlerProvider)
	app := NewApplication(httpServer, log)

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
