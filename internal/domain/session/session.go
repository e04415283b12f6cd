package session

import (
	"sync"
	"sync/atomic"

	"github.com/keelridge/blankchart/internal/domain/chat"
)

// State is the session lifecycle phase.
type State string

const (
	// StateInitializing covers the greeting round trip after the form lands.
	StateInitializing State = "initializing"
	// StateActive is the steady message-exchange state.
	StateActive State = "active"
	// StateDispatching is the transient window while the transcript forward
	// is in flight.
	StateDispatching State = "dispatching"
	// StateDispatched is terminal; no further trigger has any effect.
	StateDispatched State = "dispatched"
)

// Session is one visitor's conversation, from form submission to transcript
// dispatch. The zero-to-dispatched lifecycle is driven by Service; the
// session itself only owns its state and the at-most-once dispatch guard.
type Session struct {
	ID   string
	Form chat.FormSubmission

	mu       sync.Mutex
	state    State
	messages []chat.Message
	busy     bool

	// dispatched is the single at-most-once guard. Every trigger path does
	// one CompareAndSwap on it; whichever fires first performs the forward
	// and every later trigger no-ops.
	dispatched atomic.Bool
}

// New creates a session in the initializing state.
func New(id string, form chat.FormSubmission) *Session {
	return &Session{
		ID:    id,
		Form:  form,
		state: StateInitializing,
	}
}

// BeginDispatch claims the dispatch guard. It returns true for exactly one
// caller per session, no matter how many triggers race.
func (s *Session) BeginDispatch() bool {
	return s.dispatched.CompareAndSwap(false, true)
}

// DispatchClaimed reports whether any trigger has already claimed dispatch.
func (s *Session) DispatchClaimed() bool {
	return s.dispatched.Load()
}

func (s *Session) setState(state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
}

// State returns the current lifecycle phase.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) append(msg chat.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
}

// Messages returns a copy of the conversation so far.
func (s *Session) Messages() []chat.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]chat.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Len returns the number of conversation turns.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}

// beginSend marks a relay round trip in flight. It fails when the session is
// not active or another send is still pending.
func (s *Session) beginSend() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateActive {
		return ErrSessionClosed
	}
	if s.busy {
		return ErrBusy
	}
	s.busy = true
	return nil
}

func (s *Session) endSend() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = false
}

// Busy reports whether a relay round trip is in flight.
func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// Snapshot is an immutable view of a session for the HTTP layer.
type Snapshot struct {
	ID             string         `json:"sessionId"`
	State          State          `json:"state"`
	Messages       []chat.Message `json:"messages"`
	TranscriptSent bool           `json:"transcriptSent"`
}

// Snapshot captures the session's current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	msgs := make([]chat.Message, len(s.messages))
	copy(msgs, s.messages)
	return Snapshot{
		ID:             s.ID,
		State:          s.state,
		Messages:       msgs,
		TranscriptSent: s.state == StateDispatched,
	}
}
