package handlers

import (
	"context"

	"github.com/keelridge/blankchart/internal/domain/idea"
)

// IdeaHandler invokes the idea catalog.
type IdeaHandler struct {
	service idea.Service
}

// NewIdeaHandler wires dependencies for idea routes.
func NewIdeaHandler(service idea.Service) *IdeaHandler {
	return &IdeaHandler{service: service}
}

// List returns the catalog, optionally filtered by activity tag.
func (h *IdeaHandler) List(ctx context.Context, tag string) ([]idea.Idea, error) {
	return h.service.List(ctx, tag)
}

// GetBySlug returns one idea or idea.ErrNotFound.
func (h *IdeaHandler) GetBySlug(ctx context.Context, slug string) (idea.Idea, error) {
	return h.service.GetBySlug(ctx, slug)
}
