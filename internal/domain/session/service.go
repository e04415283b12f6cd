package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/keelridge/blankchart/internal/domain/chat"
	"github.com/keelridge/blankchart/internal/domain/transcript"
	"github.com/keelridge/blankchart/internal/infrastructure/metrics"
)

// Opener is the synthetic user turn that seeds every relay call. Keeping it
// at the head of the forwarded history keeps the provider-side context
// consistent between the greeting and later turns; it is never part of the
// visible conversation or the transcript.
const Opener = "Hi, I just submitted a destination idea to Blank Chart."

const (
	// autoDispatchThreshold fires dispatch once an assistant reply brings
	// the transcript to this many messages.
	autoDispatchThreshold = 6
	// endChatMinMessages gates the explicit end action.
	endChatMinMessages = 3
	// unloadMinMessages gates the page-unload beacon path.
	unloadMinMessages = 2
)

var (
	ErrNotFound = errors.New("session not found")
	// ErrSessionClosed means the transcript has already been dispatched.
	ErrSessionClosed = errors.New("session already closed")
	// ErrBusy means a relay round trip is still in flight.
	ErrBusy = errors.New("session has a request in flight")
	// ErrTooFewMessages gates the explicit end action.
	ErrTooFewMessages = errors.New("not enough messages to end the chat")
)

// Service drives the conversation lifecycle: greeting, message round trips,
// and the three dispatch triggers, all funneled through the session's
// at-most-once guard.
type Service interface {
	Start(ctx context.Context, form chat.FormSubmission) (Snapshot, error)
	Get(ctx context.Context, id string) (Snapshot, error)
	Send(ctx context.Context, id, content string) (Snapshot, error)
	End(ctx context.Context, id string) (Snapshot, error)
	Unload(ctx context.Context, id string) error
}

type service struct {
	store      Store
	relay      chat.Relay
	dispatcher transcript.Dispatcher
	log        zerolog.Logger
}

// NewService wires the session controller.
func NewService(store Store, relay chat.Relay, dispatcher transcript.Dispatcher, log zerolog.Logger) Service {
	return &service{
		store:      store,
		relay:      relay,
		dispatcher: dispatcher,
		log:        log.With().Str("component", "session-controller").Logger(),
	}
}

func (s *service) Start(ctx context.Context, form chat.FormSubmission) (Snapshot, error) {
	sess := New(uuid.NewString(), form)
	s.store.Put(sess)
	metrics.SessionsStartedTotal.Inc()

	greeting, err := s.relay.Reply(ctx, []chat.Message{{Role: chat.RoleUser, Content: Opener}}, &form)
	if err != nil {
		// The visitor must never land in an empty chat: degrade to a local
		// template that still references their name and destination.
		greeting = fallbackGreeting(form, err)
		s.log.Warn().Err(err).Str("session_id", sess.ID).Msg("greeting degraded to local template")
	}

	sess.append(chat.Message{Role: chat.RoleAssistant, Content: greeting})
	metrics.SessionMessagesTotal.WithLabelValues(chat.RoleAssistant).Inc()
	sess.setState(StateActive)
	s.store.Put(sess)

	return sess.Snapshot(), nil
}

func (s *service) Get(ctx context.Context, id string) (Snapshot, error) {
	sess, ok := s.store.Get(id)
	if !ok {
		return Snapshot{}, ErrNotFound
	}
	return sess.Snapshot(), nil
}

func (s *service) Send(ctx context.Context, id, content string) (Snapshot, error) {
	sess, ok := s.store.Get(id)
	if !ok {
		return Snapshot{}, ErrNotFound
	}
	if err := sess.beginSend(); err != nil {
		return sess.Snapshot(), err
	}
	defer sess.endSend()

	sess.append(chat.Message{Role: chat.RoleUser, Content: content})
	metrics.SessionMessagesTotal.WithLabelValues(chat.RoleUser).Inc()

	history := append([]chat.Message{{Role: chat.RoleUser, Content: Opener}}, sess.Messages()...)
	reply, err := s.relay.Reply(ctx, history, nil)
	if err != nil {
		// Relay failures never end the session; apologize and stay active.
		sess.append(chat.Message{Role: chat.RoleAssistant, Content: apologyReply})
		metrics.SessionMessagesTotal.WithLabelValues(chat.RoleAssistant).Inc()
		s.store.Put(sess)
		return sess.Snapshot(), nil
	}

	sess.append(chat.Message{Role: chat.RoleAssistant, Content: reply})
	metrics.SessionMessagesTotal.WithLabelValues(chat.RoleAssistant).Inc()
	s.store.Put(sess)

	// A successful assistant reply is the natural wrap-up point: once the
	// transcript is long enough, dispatch without user action.
	if sess.Len() >= autoDispatchThreshold {
		s.tryDispatch(ctx, sess, transcript.TriggerThreshold, false)
	}

	return sess.Snapshot(), nil
}

func (s *service) End(ctx context.Context, id string) (Snapshot, error) {
	sess, ok := s.store.Get(id)
	if !ok {
		return Snapshot{}, ErrNotFound
	}
	if sess.DispatchClaimed() {
		return sess.Snapshot(), nil
	}
	if sess.Busy() {
		return sess.Snapshot(), ErrBusy
	}
	if sess.Len() < endChatMinMessages {
		return sess.Snapshot(), ErrTooFewMessages
	}

	s.tryDispatch(ctx, sess, transcript.TriggerEnd, false)
	return sess.Snapshot(), nil
}

func (s *service) Unload(ctx context.Context, id string) error {
	sess, ok := s.store.Get(id)
	if !ok {
		return ErrNotFound
	}
	if sess.Len() < unloadMinMessages {
		return nil
	}

	// Best effort: the forward must survive the teardown of the request
	// that carried the beacon, and nothing observes its outcome.
	s.tryDispatch(ctx, sess, transcript.TriggerUnload, true)
	return nil
}

// tryDispatch funnels every trigger through the session's guard. Exactly one
// caller wins the CompareAndSwap and performs the forward; the rest no-op,
// including a threshold trigger and an unload beacon landing in the same
// instant. The session always ends dispatched, even when the forward fails:
// the lead is captured elsewhere and repeated sends would duplicate mail.
func (s *service) tryDispatch(ctx context.Context, sess *Session, trigger string, detach bool) bool {
	if !sess.BeginDispatch() {
		return false
	}
	sess.setState(StateDispatching)

	if detach {
		go s.forward(context.WithoutCancel(ctx), sess, trigger)
		return true
	}
	s.forward(ctx, sess, trigger)
	return true
}

func (s *service) forward(ctx context.Context, sess *Session, trigger string) {
	if err := s.dispatcher.Dispatch(ctx, sess.Form, sess.Messages(), trigger); err != nil {
		s.log.Warn().Err(err).Str("session_id", sess.ID).Str("trigger", trigger).Msg("transcript dispatch failed")
	}
	sess.setState(StateDispatched)
	s.store.Put(sess)
}

const apologyReply = "Hit a snag on our end — but your idea is submitted. Whit has the details and will review it."

// fallbackGreeting builds the local greeting used when the relay cannot
// produce one. The not-configured case gets the "assistant warming up"
// wording since the assistant is genuinely unavailable.
func fallbackGreeting(form chat.FormSubmission, err error) string {
	if errors.Is(err, chat.ErrNotConfigured) {
		return fmt.Sprintf(
			"Hey %s! Thanks for submitting %s. While our assistant is warming up, Whit will review your idea and reach out if it moves forward. Great pitch.",
			form.FirstName(), form.Destination,
		)
	}
	return fmt.Sprintf(
		"Hey %s! Love the %s idea. I'd love to dig into this with you — what first drew you to this place?",
		form.FirstName(), form.Destination,
	)
}
