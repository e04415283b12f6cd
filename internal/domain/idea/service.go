package idea

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// ErrNotFound is returned for unknown idea slugs.
var ErrNotFound = errors.New("idea not found")

// Service describes the read surface of the idea catalog.
type Service interface {
	List(ctx context.Context, tag string) ([]Idea, error)
	GetBySlug(ctx context.Context, slug string) (Idea, error)
}

type service struct {
	repo Repository
	log  zerolog.Logger
}

// NewService wires the idea catalog service.
func NewService(repo Repository, log zerolog.Logger) Service {
	return &service{
		repo: repo,
		log:  log.With().Str("component", "idea-catalog").Logger(),
	}
}

// List returns the catalog, optionally narrowed to ideas carrying the tag.
func (s *service) List(ctx context.Context, tag string) ([]Idea, error) {
	ideas, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("list ideas")
		return nil, err
	}
	if tag == "" {
		return ideas, nil
	}
	return lo.Filter(ideas, func(i Idea, _ int) bool {
		return lo.Contains(i.Tags, tag)
	}), nil
}

func (s *service) GetBySlug(ctx context.Context, slug string) (Idea, error) {
	found, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.Error().Err(err).Str("slug", slug).Msg("get idea")
		}
		return Idea{}, err
	}
	return found, nil
}
