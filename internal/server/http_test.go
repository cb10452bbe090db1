package server

import (
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"outreachr/internal/history"
)

func TestMessageHistoryBounded(t *testing.T) {
	h := newMessageHistory(3)

	for _, pos := range []string{"Backend Engineer", "SRE", "Data Engineer", "Platform Engineer"} {
		h.Add(history.Entry{
			Timestamp:      time.Now(),
			TargetPosition: pos,
			Tone:           "Professional",
			Length:         "standard",
			Provider:       "local",
			Message:        "Hi [Name],",
		})
	}

	entries, capacity := h.Snapshot()
	if capacity != 3 {
		t.Errorf("Snapshot capacity = %d, want 3", capacity)
	}
	if len(entries) != 3 {
		t.Fatalf("Snapshot returned %d entries, want 3", len(entries))
	}
	if entries[0].TargetPosition != "SRE" {
		t.Errorf("oldest retained entry = %q, want %q", entries[0].TargetPosition, "SRE")
	}
	if entries[2].TargetPosition != "Platform Engineer" {
		t.Errorf("newest entry = %q, want %q", entries[2].TargetPosition, "Platform Engineer")
	}
}

func TestMessageHistoryConcurrentAdd(t *testing.T) {
	h := newMessageHistory(5)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.Add(history.Entry{
				Timestamp:      time.Now(),
				TargetPosition: "Backend Engineer",
				Provider:       "local",
			})
		}()
	}
	wg.Wait()

	entries, _ := h.Snapshot()
	if len(entries) != 5 {
		t.Errorf("Snapshot returned %d entries after concurrent adds, want 5", len(entries))
	}
}

func TestParseJSONRequest(t *testing.T) {
	body := `{"profileText": "Summary\nEngineer with Go experience."}`
	r := httptest.NewRequest("POST", "/extract", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")

	var req ExtractRequest
	if err := parseJSONRequest(r, &req); err != nil {
		t.Fatalf("parseJSONRequest failed: %v", err)
	}
	if !strings.Contains(req.ProfileText, "Go experience") {
		t.Errorf("ProfileText not parsed, got: %q", req.ProfileText)
	}
}

func TestParseJSONRequestRejectsWrongContentType(t *testing.T) {
	r := httptest.NewRequest("POST", "/extract", strings.NewReader("{}"))
	r.Header.Set("Content-Type", "text/plain")

	var req ExtractRequest
	err := parseJSONRequest(r, &req)
	if err == nil {
		t.Fatal("expected error for non-JSON content type")
	}
	if !strings.Contains(err.Error(), "content-type") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestMaskAPIKey(t *testing.T) {
	if got := maskAPIKey("short"); got != "****" {
		t.Errorf("maskAPIKey(short) = %q, want ****", got)
	}
	if got := maskAPIKey("abcdefgh12345678"); got != "abcdefgh****" {
		t.Errorf("maskAPIKey = %q, want abcdefgh****", got)
	}
}
