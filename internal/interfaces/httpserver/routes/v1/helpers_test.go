package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/keelridge/blankchart/internal/domain/chat"
	"github.com/keelridge/blankchart/internal/domain/idea"
	"github.com/keelridge/blankchart/internal/domain/session"
	"github.com/keelridge/blankchart/internal/interfaces/httpserver/handlers"
	idearepo "github.com/keelridge/blankchart/internal/infrastructure/repository/idea"
	"github.com/keelridge/blankchart/internal/infrastructure/sessionstore"
)

type mockRelay struct {
	calls     atomic.Int64
	ReplyFunc func(ctx context.Context, messages []chat.Message, form *chat.FormSubmission) (string, error)
}

func (m *mockRelay) Reply(ctx context.Context, messages []chat.Message, form *chat.FormSubmission) (string, error) {
	m.calls.Add(1)
	return m.ReplyFunc(ctx, messages, form)
}

type mockDispatcher struct {
	calls        atomic.Int64
	lastTrigger  atomic.Value
	DispatchFunc func(ctx context.Context, form chat.FormSubmission, messages []chat.Message, trigger string) error
}

func (m *mockDispatcher) Dispatch(ctx context.Context, form chat.FormSubmission, messages []chat.Message, trigger string) error {
	m.calls.Add(1)
	m.lastTrigger.Store(trigger)
	if m.DispatchFunc == nil {
		return nil
	}
	return m.DispatchFunc(ctx, form, messages, trigger)
}

func newTestRouter(t *testing.T, relay chat.Relay, dispatcher *mockDispatcher) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := zerolog.Nop()
	sessions := session.NewService(sessionstore.New(time.Minute), relay, dispatcher, log)
	ideas := idea.NewService(idearepo.NewInMemoryRepository(), log)

	engine := gin.New()
	NewRoutes(handlers.NewProvider(relay, dispatcher, sessions, ideas)).Register(engine)
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response body %q: %v", rec.Body.String(), err)
	}
	return out
}

func anaSubmission() chat.FormSubmission {
	return chat.FormSubmission{
		Name:        "Ana Silva",
		Location:    "Lisbon",
		Destination: "Faroe Islands",
		Country:     "Denmark",
		Pitch:       "Sea kayaking between volcanic islands",
		Activities:  "Kayak, Trek",
		BeenThere:   "no",
		Email:       "ana@example.com",
	}
}
