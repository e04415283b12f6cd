package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/keelridge/blankchart/internal/domain/chat"
	"github.com/keelridge/blankchart/internal/domain/session"
	"github.com/keelridge/blankchart/internal/domain/transcript"
)

func startTestSession(t *testing.T, engine *gin.Engine) session.Snapshot {
	t.Helper()
	rec := doJSON(t, engine, http.MethodPost, "/v1/sessions", gin.H{"formData": anaSubmission()})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 starting a session, got %d: %s", rec.Code, rec.Body.String())
	}
	return decodeJSON[session.Snapshot](t, rec)
}

func TestStartSessionGreeting(t *testing.T) {
	relay := &mockRelay{ReplyFunc: func(ctx context.Context, messages []chat.Message, form *chat.FormSubmission) (string, error) {
		return "Hey Ana! The Faroe Islands by kayak, bold choice. What first put it on your map?", nil
	}}
	engine := newTestRouter(t, relay, &mockDispatcher{})

	snap := startTestSession(t, engine)

	if snap.ID == "" {
		t.Error("expected a session id")
	}
	if snap.State != session.StateActive {
		t.Errorf("expected an active session, got %s", snap.State)
	}
	if len(snap.Messages) != 1 {
		t.Fatalf("expected exactly the greeting, got %d messages", len(snap.Messages))
	}
	first := snap.Messages[0]
	if first.Role != chat.RoleAssistant {
		t.Errorf("first message role = %s, want assistant", first.Role)
	}
	if first.Content != "Hey Ana! The Faroe Islands by kayak, bold choice. What first put it on your map?" {
		t.Errorf("unexpected greeting: %q", first.Content)
	}
}

func TestStartSessionGreetingFallback(t *testing.T) {
	relay := &mockRelay{ReplyFunc: func(ctx context.Context, messages []chat.Message, form *chat.FormSubmission) (string, error) {
		return "", errors.New("provider down")
	}}
	engine := newTestRouter(t, relay, &mockDispatcher{})

	snap := startTestSession(t, engine)

	if snap.State != session.StateActive {
		t.Errorf("relay failure must still yield an active session, got %s", snap.State)
	}
	if len(snap.Messages) != 1 {
		t.Fatalf("expected a fallback greeting, got %d messages", len(snap.Messages))
	}
	greeting := snap.Messages[0].Content
	if greeting != "Hey Ana! Love the Faroe Islands idea. I'd love to dig into this with you — what first drew you to this place?" {
		t.Errorf("unexpected fallback greeting: %q", greeting)
	}
}

func TestGetUnknownSession(t *testing.T) {
	relay := &mockRelay{ReplyFunc: func(ctx context.Context, messages []chat.Message, form *chat.FormSubmission) (string, error) {
		return "hi", nil
	}}
	engine := newTestRouter(t, relay, &mockDispatcher{})

	rec := doJSON(t, engine, http.MethodGet, "/v1/sessions/unknown-id", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for an unknown session, got %d", rec.Code)
	}
}

func TestSendMessageRoundTrip(t *testing.T) {
	relay := &mockRelay{ReplyFunc: func(ctx context.Context, messages []chat.Message, form *chat.FormSubmission) (string, error) {
		return fmt.Sprintf("reply %d", len(messages)), nil
	}}
	engine := newTestRouter(t, relay, &mockDispatcher{})
	snap := startTestSession(t, engine)

	rec := doJSON(t, engine, http.MethodPost, "/v1/sessions/"+snap.ID+"/messages", gin.H{"content": "It has sea caves."})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	after := decodeJSON[session.Snapshot](t, rec)
	if len(after.Messages) != 3 {
		t.Fatalf("expected greeting + user + reply, got %d messages", len(after.Messages))
	}
	if after.Messages[1].Role != chat.RoleUser || after.Messages[1].Content != "It has sea caves." {
		t.Errorf("unexpected user turn: %+v", after.Messages[1])
	}
	if after.Messages[2].Role != chat.RoleAssistant {
		t.Errorf("unexpected reply turn: %+v", after.Messages[2])
	}
}

func TestThresholdDispatchViaRoutes(t *testing.T) {
	relay := &mockRelay{ReplyFunc: func(ctx context.Context, messages []chat.Message, form *chat.FormSubmission) (string, error) {
		return "sounds great", nil
	}}
	dispatcher := &mockDispatcher{}
	engine := newTestRouter(t, relay, dispatcher)
	snap := startTestSession(t, engine)

	// Greeting is message one; round trips add two each, so the third send
	// lands on seven messages and crosses the threshold.
	var last session.Snapshot
	for i := 0; i < 3; i++ {
		rec := doJSON(t, engine, http.MethodPost, "/v1/sessions/"+snap.ID+"/messages", gin.H{"content": "more detail"})
		if rec.Code != http.StatusOK {
			t.Fatalf("send %d: expected 200, got %d: %s", i, rec.Code, rec.Body.String())
		}
		last = decodeJSON[session.Snapshot](t, rec)
	}

	waitForDispatch(t, dispatcher, 1)
	if got := dispatcher.lastTrigger.Load(); got != transcript.TriggerThreshold {
		t.Errorf("expected the threshold trigger, got %v", got)
	}
	if len(last.Messages) != 7 {
		t.Errorf("expected 7 messages after three round trips, got %d", len(last.Messages))
	}

	rec := doJSON(t, engine, http.MethodPost, "/v1/sessions/"+snap.ID+"/messages", gin.H{"content": "one more"})
	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409 sending into a dispatched session, got %d", rec.Code)
	}
}

func TestEndSessionDispatchesOnce(t *testing.T) {
	relay := &mockRelay{ReplyFunc: func(ctx context.Context, messages []chat.Message, form *chat.FormSubmission) (string, error) {
		return "tell me more", nil
	}}
	dispatcher := &mockDispatcher{}
	engine := newTestRouter(t, relay, dispatcher)
	snap := startTestSession(t, engine)

	doJSON(t, engine, http.MethodPost, "/v1/sessions/"+snap.ID+"/messages", gin.H{"content": "sea caves"})

	rec := doJSON(t, engine, http.MethodPost, "/v1/sessions/"+snap.ID+"/end", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 ending the session, got %d: %s", rec.Code, rec.Body.String())
	}
	ended := decodeJSON[session.Snapshot](t, rec)
	waitForDispatch(t, dispatcher, 1)
	if !ended.TranscriptSent && ended.State != session.StateDispatching {
		t.Errorf("expected a dispatching or dispatched session, got %s", ended.State)
	}
	if got := dispatcher.lastTrigger.Load(); got != transcript.TriggerEnd {
		t.Errorf("expected the end trigger, got %v", got)
	}

	// A second end is a no-op against the already claimed guard.
	rec = doJSON(t, engine, http.MethodPost, "/v1/sessions/"+snap.ID+"/end", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for a repeated end, got %d", rec.Code)
	}
	if dispatcher.calls.Load() != 1 {
		t.Errorf("transcript dispatched %d times, want exactly 1", dispatcher.calls.Load())
	}
}

func TestEndSessionTooEarly(t *testing.T) {
	relay := &mockRelay{ReplyFunc: func(ctx context.Context, messages []chat.Message, form *chat.FormSubmission) (string, error) {
		return "hello", nil
	}}
	dispatcher := &mockDispatcher{}
	engine := newTestRouter(t, relay, dispatcher)
	snap := startTestSession(t, engine)

	rec := doJSON(t, engine, http.MethodPost, "/v1/sessions/"+snap.ID+"/end", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 ending with only the greeting, got %d", rec.Code)
	}
	if dispatcher.calls.Load() != 0 {
		t.Errorf("no dispatch may fire below the end threshold, got %d", dispatcher.calls.Load())
	}
}

func TestUnloadBeacon(t *testing.T) {
	relay := &mockRelay{ReplyFunc: func(ctx context.Context, messages []chat.Message, form *chat.FormSubmission) (string, error) {
		return "hello", nil
	}}
	dispatcher := &mockDispatcher{}
	engine := newTestRouter(t, relay, dispatcher)
	snap := startTestSession(t, engine)

	// Only the greeting so far; the beacon is a silent no-op.
	rec := doJSON(t, engine, http.MethodPost, "/v1/sessions/"+snap.ID+"/unload", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if dispatcher.calls.Load() != 0 {
		t.Errorf("no dispatch may fire below the unload threshold, got %d", dispatcher.calls.Load())
	}

	doJSON(t, engine, http.MethodPost, "/v1/sessions/"+snap.ID+"/messages", gin.H{"content": "sea caves"})

	rec = doJSON(t, engine, http.MethodPost, "/v1/sessions/"+snap.ID+"/unload", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	waitForDispatch(t, dispatcher, 1)
	if got := dispatcher.lastTrigger.Load(); got != transcript.TriggerUnload {
		t.Errorf("expected the unload trigger, got %v", got)
	}

	// The beacon shape never changes, even for unknown sessions.
	rec = doJSON(t, engine, http.MethodPost, "/v1/sessions/missing/unload", nil)
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204 for an unknown session beacon, got %d", rec.Code)
	}
}

func waitForDispatch(t *testing.T, dispatcher *mockDispatcher, want int64) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if dispatcher.calls.Load() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("dispatch count = %d, want %d", dispatcher.calls.Load(), want)
}
