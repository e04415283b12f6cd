package idea

import "context"

// Repository exposes read-only access to the idea catalog.
type Repository interface {
	List(ctx context.Context) ([]Idea, error)
	GetBySlug(ctx context.Context, slug string) (Idea, error)
}
