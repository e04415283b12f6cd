package handlers

import (
	"context"

	"github.com/keelridge/blankchart/internal/domain/chat"
	"github.com/keelridge/blankchart/internal/domain/session"
)

// SessionHandler invokes the conversation session controller.
type SessionHandler struct {
	sessions session.Service
}

// NewSessionHandler wires dependencies for session routes.
func NewSessionHandler(sessions session.Service) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Start opens a session for a fresh form submission and runs the greeting
// round trip.
func (h *SessionHandler) Start(ctx context.Context, form chat.FormSubmission) (session.Snapshot, error) {
	return h.sessions.Start(ctx, form)
}

// Get returns the current session snapshot.
func (h *SessionHandler) Get(ctx context.Context, id string) (session.Snapshot, error) {
	return h.sessions.Get(ctx, id)
}

// Send runs one user message round trip.
func (h *SessionHandler) Send(ctx context.Context, id, content string) (session.Snapshot, error) {
	return h.sessions.Send(ctx, id, content)
}

// End fires the explicit end-chat dispatch trigger.
func (h *SessionHandler) End(ctx context.Context, id string) (session.Snapshot, error) {
	return h.sessions.End(ctx, id)
}

// Unload fires the best-effort page-unload dispatch trigger.
func (h *SessionHandler) Unload(ctx context.Context, id string) error {
	return h.sessions.Unload(ctx, id)
}
