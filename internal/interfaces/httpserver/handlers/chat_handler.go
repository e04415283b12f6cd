package handlers

import (
	"context"

	"github.com/keelridge/blankchart/internal/domain/chat"
)

// ChatHandler invokes the stateless language-model relay.
type ChatHandler struct {
	relay chat.Relay
}

// NewChatHandler wires dependencies for chat routes.
func NewChatHandler(relay chat.Relay) *ChatHandler {
	return &ChatHandler{relay: relay}
}

// Reply forwards the supplied history (and optional one-shot form context)
// to the provider and returns the assistant's reply text.
func (h *ChatHandler) Reply(ctx context.Context, messages []chat.Message, form *chat.FormSubmission) (string, error) {
	return h.relay.Reply(ctx, messages, form)
}
