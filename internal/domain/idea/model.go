package idea

// Status tracks where a community idea sits in the review pipeline.
type Status string

const (
	StatusNew            Status = "New"
	StatusUnderReview    Status = "Under Review"
	StatusInDevelopment  Status = "In Development"
	StatusNowDestination Status = "Now a Keel Ridge Destination"
)

// Idea is a community-submitted destination pitch. Records are compiled in
// and immutable at runtime.
type Idea struct {
	Slug        string   `json:"slug"`
	Destination string   `json:"destination"`
	Title       string   `json:"title"`
	Region      string   `json:"region"`
	Pitch       string   `json:"pitch"`
	Submitter   string   `json:"submitter"`
	Location    string   `json:"location"`
	Tags        []string `json:"tags"`
	Status      Status   `json:"status"`
}
