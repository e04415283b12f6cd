//go:build wireinject

package main

import (
	"strings"

	"github.com/google/wire"
	"github.com/rs/zerolog"

	"github.com/keelridge/blankchart/internal/config"
	"github.com/keelridge/blankchart/internal/domain/chat"
	ideadomain "github.com/keelridge/blankchart/internal/domain/idea"
	"github.com/keelridge/blankchart/internal/domain/session"
	"github.com/keelridge/blankchart/internal/domain/transcript"
	"github.com/keelridge/blankchart/internal/infrastructure/anthropic"
	"github.com/keelridge/blankchart/internal/infrastructure/formrelay"
	"github.com/keelridge/blankchart/internal/infrastructure/logger"
	idearepo "github.com/keelridge/blankchart/internal/infrastructure/repository/idea"
	"github.com/keelridge/blankchart/internal/infrastructure/sessionstore"
	"github.com/keelridge/blankchart/internal/interfaces/httpserver"
	"github.com/keelridge/blankchart/internal/interfaces/httpserver/handlers"
)

var ideaSet = wire.NewSet(
	idearepo.NewInMemoryRepository,
	wire.Bind(new(ideadomain.Repository), new(*idearepo.InMemoryRepository)),
	ideadomain.NewService,
)

var chatSet = wire.NewSet(
	anthropic.NewClient,
	wire.Bind(new(chat.ProviderClient), new(*anthropic.Client)),
	newRelay,
)

var transcriptSet = wire.NewSet(
	formrelay.NewClient,
	wire.Bind(new(transcript.Forwarder), new(*formrelay.Client)),
	transcript.NewDispatcher,
)

var sessionSet = wire.NewSet(
	newSessionStore,
	wire.Bind(new(session.Store), new(*sessionstore.CacheStore)),
	session.NewService,
)

// BuildApplication demonstrates how to assemble the service with Wire.
func BuildApplication() (*Application, error) {
	wire.Build(
		config.Load,
		logger.New,
		ideaSet,
		chatSet,
		transcriptSet,
		sessionSet,
		handlers.NewProvider,
		httpserver.New,
		NewApplication,
	)
	return nil, nil
}

func newRelay(client chat.ProviderClient, cfg *config.Config, log zerolog.Logger) (chat.Relay, error) {
	persona, err := chat.LoadPersona(cfg.PersonaFile)
	if err != nil {
		return nil, err
	}
	configured := strings.TrimSpace(cfg.AnthropicAPIKey) != ""
	return chat.NewRelay(client, persona, configured, log), nil
}

func newSessionStore(cfg *config.Config) *sessionstore.CacheStore {
	return sessionstore.New(cfg.SessionTTL)
}
