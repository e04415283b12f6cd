package chat

import "strings"

// Message roles. The conversation only ever carries these two; the system
// prompt travels out of band to the provider.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single conversation turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// FormSubmission is the destination idea captured by the submission form.
// It is created once in the browser and never persisted server-side; it only
// rides along into the greeting prompt and the curator transcript.
type FormSubmission struct {
	Name        string `json:"name" binding:"required"`
	Location    string `json:"location"`
	Destination string `json:"destination" binding:"required"`
	Country     string `json:"country"`
	Pitch       string `json:"pitch"`
	Activities  string `json:"activities"`
	BeenThere   string `json:"beenThere"`
	Notes       string `json:"notes"`
	Email       string `json:"email"`
}

// FirstName returns the submitter's first name for greeting templates.
func (f FormSubmission) FirstName() string {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return "there"
	}
	if idx := strings.IndexByte(name, ' '); idx > 0 {
		return name[:idx]
	}
	return name
}
