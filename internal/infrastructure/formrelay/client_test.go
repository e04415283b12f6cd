package formrelay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/keelridge/blankchart/internal/config"
	"github.com/keelridge/blankchart/internal/domain/transcript"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		FormRelayBaseURL: baseURL,
		FormRelayFormID:  "xlgwpkqg",
		FormRelayTimeout: 5 * time.Second,
	}
}

func TestSend(t *testing.T) {
	var gotPath, gotAccept string
	var gotBody map[string]string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAccept = r.Header.Get("Accept")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer ts.Close()

	client := NewClient(testConfig(ts.URL))
	err := client.Send(context.Background(), transcript.Forward{
		Subject:     "Chat Transcript: Faroe Islands — Ana Silva",
		Name:        "Ana Silva",
		Destination: "Faroe Islands",
		Document:    "the rendered transcript",
	})
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	if gotPath != "/f/xlgwpkqg" {
		t.Errorf("unexpected path: %s", gotPath)
	}
	if gotAccept != "application/json" {
		t.Errorf("unexpected Accept header: %q", gotAccept)
	}
	if gotBody["_subject"] != "Chat Transcript: Faroe Islands — Ana Silva" {
		t.Errorf("unexpected _subject: %q", gotBody["_subject"])
	}
	if gotBody["name"] != "Ana Silva" {
		t.Errorf("unexpected name: %q", gotBody["name"])
	}
	if gotBody["destination"] != "Faroe Islands" {
		t.Errorf("unexpected destination: %q", gotBody["destination"])
	}
	if gotBody["transcript"] != "the rendered transcript" {
		t.Errorf("unexpected transcript: %q", gotBody["transcript"])
	}
}

func TestSendRelayError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"errors":[{"message":"form disabled"}]}`, http.StatusForbidden)
	}))
	defer ts.Close()

	client := NewClient(testConfig(ts.URL))
	if err := client.Send(context.Background(), transcript.Forward{Name: "Ana"}); err == nil {
		t.Error("expected an error for a non-success response")
	}
}
