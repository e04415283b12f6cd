package idea

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

type stubRepository struct {
	ideas []Idea
	err   error
}

func (r *stubRepository) List(ctx context.Context) ([]Idea, error) {
	return r.ideas, r.err
}

func (r *stubRepository) GetBySlug(ctx context.Context, slug string) (Idea, error) {
	for _, rec := range r.ideas {
		if rec.Slug == slug {
			return rec, nil
		}
	}
	return Idea{}, ErrNotFound
}

func testCatalog() []Idea {
	return []Idea{
		{Slug: "a", Tags: []string{"Kayak", "Sailing"}},
		{Slug: "b", Tags: []string{"Ski"}},
		{Slug: "c", Tags: []string{"Kayak"}},
	}
}

func TestListWithoutTag(t *testing.T) {
	svc := NewService(&stubRepository{ideas: testCatalog()}, zerolog.Nop())

	ideas, err := svc.List(context.Background(), "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(ideas) != 3 {
		t.Errorf("expected the full catalog, got %d ideas", len(ideas))
	}
}

func TestListFiltersByTag(t *testing.T) {
	svc := NewService(&stubRepository{ideas: testCatalog()}, zerolog.Nop())

	ideas, err := svc.List(context.Background(), "Kayak")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(ideas) != 2 {
		t.Fatalf("expected 2 ideas tagged Kayak, got %d", len(ideas))
	}
	if ideas[0].Slug != "a" || ideas[1].Slug != "c" {
		t.Errorf("unexpected filtered slugs: %s, %s", ideas[0].Slug, ideas[1].Slug)
	}
}

func TestListUnknownTag(t *testing.T) {
	svc := NewService(&stubRepository{ideas: testCatalog()}, zerolog.Nop())

	ideas, err := svc.List(context.Background(), "Diving")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(ideas) != 0 {
		t.Errorf("expected no ideas for an unknown tag, got %d", len(ideas))
	}
}

func TestGetBySlugPassesThroughNotFound(t *testing.T) {
	svc := NewService(&stubRepository{ideas: testCatalog()}, zerolog.Nop())

	if _, err := svc.GetBySlug(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
