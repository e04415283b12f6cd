package transcript

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/keelridge/blankchart/internal/domain/chat"
)

// AssistantLabel is the speaker label for assistant turns in the curator
// document.
const AssistantLabel = "BLANK CHART"

const (
	rule             = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"
	messageSeparator = "\n\n---\n\n"
)

// Document renders the curator-facing transcript. The output is a pure
// function of its inputs: identical form data and messages produce a
// byte-identical document.
func Document(form chat.FormSubmission, messages []chat.Message) string {
	userLabel := strings.ToUpper(strings.TrimSpace(form.Name))
	if userLabel == "" {
		userLabel = "USER"
	}

	rendered := lo.Map(messages, func(m chat.Message, _ int) string {
		label := userLabel
		if m.Role == chat.RoleAssistant {
			label = AssistantLabel
		}
		return label + ":\n" + m.Content
	})

	region := form.Country
	if strings.TrimSpace(region) == "" {
		region = "Not specified"
	}
	email := form.Email
	if strings.TrimSpace(email) == "" {
		email = "Not provided"
	}

	return fmt.Sprintf(`BLANK CHART — CHAT TRANSCRIPT
%s

Submitter: %s
Destination: %s
Region: %s
Email: %s

%s

%s

%s
End of transcript — %d messages
Submitted from blankchart.co`,
		rule,
		form.Name,
		form.Destination,
		region,
		email,
		rule,
		strings.Join(rendered, messageSeparator),
		rule,
		len(messages),
	)
}

// Subject builds the form-relay subject line for a transcript.
func Subject(form chat.FormSubmission) string {
	return fmt.Sprintf("Chat Transcript: %s — %s", form.Destination, form.Name)
}
