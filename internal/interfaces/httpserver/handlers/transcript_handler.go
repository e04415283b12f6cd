package handlers

import (
	"context"

	"github.com/keelridge/blankchart/internal/domain/chat"
	"github.com/keelridge/blankchart/internal/domain/transcript"
)

// TranscriptHandler invokes the transcript dispatcher for the stateless
// endpoint (used by clients that manage their own conversation state).
type TranscriptHandler struct {
	dispatcher transcript.Dispatcher
}

// NewTranscriptHandler wires dependencies for transcript routes.
func NewTranscriptHandler(dispatcher transcript.Dispatcher) *TranscriptHandler {
	return &TranscriptHandler{dispatcher: dispatcher}
}

// Dispatch formats and forwards a finished conversation. The error carries
// the true upstream outcome; the route decides what the caller sees.
func (h *TranscriptHandler) Dispatch(ctx context.Context, form chat.FormSubmission, messages []chat.Message) error {
	return h.dispatcher.Dispatch(ctx, form, messages, transcript.TriggerAPI)
}
