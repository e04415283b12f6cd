package idea

import (
	"context"

	domain "github.com/keelridge/blankchart/internal/domain/idea"
)

// InMemoryRepository serves the compiled-in idea catalog. The catalog is
// static by design; there is no mutation path.
type InMemoryRepository struct {
	ideas []domain.Idea
}

// NewInMemoryRepository seeds the catalog.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{ideas: catalog}
}

// List returns every idea in catalog order.
func (r *InMemoryRepository) List(ctx context.Context) ([]domain.Idea, error) {
	out := make([]domain.Idea, len(r.ideas))
	copy(out, r.ideas)
	return out, nil
}

// GetBySlug returns the idea for a slug, or domain.ErrNotFound.
func (r *InMemoryRepository) GetBySlug(ctx context.Context, slug string) (domain.Idea, error) {
	for _, rec := range r.ideas {
		if rec.Slug == slug {
			return rec, nil
		}
	}
	return domain.Idea{}, domain.ErrNotFound
}

var catalog = []domain.Idea{
	{
		Slug:        "faroe-islands-sea-kayak",
		Destination: "Faroe Islands",
		Title:       "Faroe Islands by Sea Kayak",
		Region:      "North Atlantic",
		Pitch:       "Paddling between 18 volcanic islands through sea caves, past puffin colonies, beneath 2,000-foot sea cliffs. No roads where the best coastline is. The only way to see it is from the water.",
		Submitter:   "Lars K.",
		Location:    "Copenhagen",
		Tags:        []string{"Kayak", "Sailing"},
		Status:      domain.StatusUnderReview,
	},
	{
		Slug:        "oman-wadi-canyoneering",
		Destination: "Oman",
		Title:       "Wadi Canyoneering & Dhow Sailing",
		Region:      "Arabian Peninsula",
		Pitch:       "The Hajar Mountains are full of deep wadis that nobody’s exploring — technical canyoneering through turquoise pools, then sail a traditional dhow down the Musandam coast.",
		Submitter:   "Priya S.",
		Location:    "Dubai",
		Tags:        []string{"Trek", "Sailing"},
		Status:      domain.StatusNew,
	},
	{
		Slug:        "svalbard-ski-sail",
		Destination: "Svalbard",
		Title:       "Spring Ski & Sail",
		Region:      "Arctic Norway",
		Pitch:       "April in Svalbard: 24-hour light, stable snowpack, and a sailboat as base camp. Ski couloirs that drop straight into Arctic fjords, then sail to the next one. Polar bears on the beach. The midnight sun on the summit.",
		Submitter:   "Erik M.",
		Location:    "Tromsø",
		Tags:        []string{"Ski", "Sailing"},
		Status:      domain.StatusInDevelopment,
	},
	{
		Slug:        "madagascar-mtb-tsingy",
		Destination: "Madagascar",
		Title:       "MTB the Tsingy",
		Region:      "Indian Ocean",
		Pitch:       "Bikepacking through Madagascar’s western dry forests to reach the Tsingy de Bemaraha — a razor-sharp limestone labyrinth. Combine with pirogue canoe down the Tsiribihina River and coastal sailing in traditional outrigger boats.",
		Submitter:   "Ana R.",
		Location:    "Lisbon",
		Tags:        []string{"MTB", "Kayak"},
		Status:      domain.StatusNew,
	},
	{
		Slug:        "wakhan-corridor",
		Destination: "Wakhan Corridor",
		Title:       "Afghanistan’s Forgotten Edge",
		Region:      "Central Asia",
		Pitch:       "The narrow strip of Afghanistan that reaches toward China — Kyrgyz nomads, Marco Polo sheep, and peaks that have never been climbed. Access from the Tajikistan side, trek through with local Wakhi guides.",
		Submitter:   "James T.",
		Location:    "London",
		Tags:        []string{"Trek", "Mountaineering"},
		Status:      domain.StatusUnderReview,
	},
	{
		Slug:        "east-greenland-scoresby-sound",
		Destination: "East Greenland",
		Title:       "Kayak the Scoresby Sound",
		Region:      "Arctic",
		Pitch:       "The world’s largest fjord system. Paddle between cathedral icebergs, camp on shores where Inuit hunters still travel by dogsled. No roads, no towns, no other tourists. Just ice, rock, and silence.",
		Submitter:   "Katrin H.",
		Location:    "Reykjavík",
		Tags:        []string{"Kayak", "Trek"},
		Status:      domain.StatusNew,
	},
}
