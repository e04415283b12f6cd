package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/keelridge/blankchart/internal/infrastructure/metrics"
)

// FallbackReply is returned when the provider answers without a usable text
// block. The user must never see an empty assistant turn.
const FallbackReply = "I'd love to explore this idea further. Could you tell me more?"

var (
	// ErrNotConfigured means the provider credential is missing. The relay
	// fails closed without touching the network.
	ErrNotConfigured = errors.New("model provider not configured")
	// ErrUpstream wraps any provider-side failure; detail stays in the logs.
	ErrUpstream = errors.New("model provider request failed")
)

// ProviderClient is the outbound edge to the chat-completion provider.
type ProviderClient interface {
	CreateMessage(ctx context.Context, system string, messages []Message) (string, error)
}

// Relay forwards a conversation to the model provider under the fixed
// persona prompt. It holds no session state; callers supply the full history
// on every call. A single best-effort attempt with no retries; continuation
// policy belongs to the session controller.
type Relay interface {
	Reply(ctx context.Context, messages []Message, form *FormSubmission) (string, error)
}

type relay struct {
	client     ProviderClient
	persona    string
	configured bool
	log        zerolog.Logger
}

// NewRelay wires the relay service. configured reflects whether the provider
// credential is present; when false every call fails closed.
func NewRelay(client ProviderClient, persona string, configured bool, log zerolog.Logger) Relay {
	return &relay{
		client:     client,
		persona:    persona,
		configured: configured,
		log:        log.With().Str("component", "chat-relay").Logger(),
	}
}

func (r *relay) Reply(ctx context.Context, messages []Message, form *FormSubmission) (string, error) {
	if !r.configured {
		r.log.Error().Msg("relay called without provider credential")
		return "", ErrNotConfigured
	}

	system := r.persona
	if form != nil {
		system = system + "\n\n" + formContext(*form)
	}

	start := time.Now()
	text, err := r.client.CreateMessage(ctx, system, messages)
	metrics.RelayLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RelayRequestsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		r.log.Error().Err(err).Int("history_len", len(messages)).Msg("provider call failed")
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	metrics.RelayRequestsTotal.WithLabelValues(metrics.OutcomeOK).Inc()

	if strings.TrimSpace(text) == "" {
		return FallbackReply, nil
	}
	return text, nil
}

// formContext renders the one-shot submission block appended to the persona
// prompt on the first call of a session.
func formContext(form FormSubmission) string {
	return fmt.Sprintf(`The user just submitted an idea to Blank Chart with the following details:
- Name: %s
- Based in: %s
- Destination: %s
- Country/Region: %s
- Pitch: %s
- Activities: %s
- Been there: %s
- Additional notes: %s

Greet them by first name. Reference their specific destination idea with genuine enthusiasm. Ask a sharp follow-up question to start exploring the idea deeper.`,
		form.Name,
		orDefault(form.Location, "Not specified"),
		form.Destination,
		orDefault(form.Country, "Not specified"),
		form.Pitch,
		orDefault(form.Activities, "Not specified"),
		orDefault(form.BeenThere, "Not specified"),
		orDefault(form.Notes, "None"),
	)
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
