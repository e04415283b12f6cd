package transcript

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/keelridge/blankchart/internal/domain/chat"
	"github.com/keelridge/blankchart/internal/infrastructure/metrics"
)

// Dispatch trigger labels, used for logging and metrics only.
const (
	TriggerThreshold = "threshold"
	TriggerEnd       = "end"
	TriggerUnload    = "unload"
	TriggerAPI       = "api"
)

// Forward is the payload handed to the form relay.
type Forward struct {
	Subject     string
	Name        string
	Destination string
	Document    string
}

// Forwarder is the outbound edge to the third-party form relay.
type Forwarder interface {
	Send(ctx context.Context, fwd Forward) error
}

// Dispatcher formats a finished conversation and forwards it to the curator.
// Forwarding is fire-and-forget from the submitter's point of view: the lead
// was already captured by the form submission, so failures here are logged
// and counted but never surfaced to the user. The dispatcher is not
// idempotent; at-most-once delivery is owned by the session controller.
type Dispatcher interface {
	Dispatch(ctx context.Context, form chat.FormSubmission, messages []chat.Message, trigger string) error
}

type dispatcher struct {
	forwarder Forwarder
	log       zerolog.Logger
}

// NewDispatcher wires the transcript dispatcher.
func NewDispatcher(forwarder Forwarder, log zerolog.Logger) Dispatcher {
	return &dispatcher{
		forwarder: forwarder,
		log:       log.With().Str("component", "transcript-dispatcher").Logger(),
	}
}

func (d *dispatcher) Dispatch(ctx context.Context, form chat.FormSubmission, messages []chat.Message, trigger string) error {
	fwd := Forward{
		Subject:     Subject(form),
		Name:        form.Name,
		Destination: form.Destination,
		Document:    Document(form, messages),
	}

	if err := d.forwarder.Send(ctx, fwd); err != nil {
		metrics.TranscriptDispatchesTotal.WithLabelValues(trigger, metrics.OutcomeError).Inc()
		d.log.Error().Err(err).
			Str("trigger", trigger).
			Str("destination", form.Destination).
			Int("messages", len(messages)).
			Msg("transcript forward failed")
		return fmt.Errorf("forward transcript: %w", err)
	}

	metrics.TranscriptDispatchesTotal.WithLabelValues(trigger, metrics.OutcomeOK).Inc()
	d.log.Info().
		Str("trigger", trigger).
		Str("destination", form.Destination).
		Int("messages", len(messages)).
		Msg("transcript forwarded")
	return nil
}
