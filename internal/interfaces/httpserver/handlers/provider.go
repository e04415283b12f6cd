package handlers

import (
	"github.com/keelridge/blankchart/internal/domain/chat"
	"github.com/keelridge/blankchart/internal/domain/idea"
	"github.com/keelridge/blankchart/internal/domain/session"
	"github.com/keelridge/blankchart/internal/domain/transcript"
)

// Provider wires all HTTP handlers for dependency injection.
type Provider struct {
	Chat       *ChatHandler
	Transcript *TranscriptHandler
	Session    *SessionHandler
	Idea       *IdeaHandler
}

// NewProvider constructs the handler provider with domain services.
func NewProvider(
	relay chat.Relay,
	dispatcher transcript.Dispatcher,
	sessions session.Service,
	ideas idea.Service,
) *Provider {
	return &Provider{
		Chat:       NewChatHandler(relay),
		Transcript: NewTranscriptHandler(dispatcher),
		Session:    NewSessionHandler(sessions),
		Idea:       NewIdeaHandler(ideas),
	}
}
