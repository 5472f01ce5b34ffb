package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/justestif/go-mood-playlists/internal/mood"
	"github.com/justestif/go-mood-playlists/internal/spotify"
	"github.com/justestif/go-mood-playlists/internal/vibes"
)

type fakeProcessor struct {
	resp  vibes.Response
	calls []vibes.Submission
}

func (f *fakeProcessor) Process(_ context.Context, sub vibes.Submission) vibes.Response {
	f.calls = append(f.calls, sub)
	return f.resp
}

func newTestHandler(t *testing.T, p MoodProcessor, reports ReportStore) http.Handler {
	t.Helper()
	s, err := NewServer(ServerConfig{Processor: p, Reports: reports})
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	return s.Handler()
}

func do(h http.Handler, method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestNewServer_RequiresProcessor(t *testing.T) {
	if _, err := NewServer(ServerConfig{}); err == nil {
		t.Error("NewServer() error = nil, want error")
	}
}

func TestProcessMood(t *testing.T) {
	ok := vibes.Response{
		VibeTitle:           "Calm Focus",
		MotivationalMessage: "Breathe deeply",
		Playlists:           spotify.Fallback(3),
		CanRequestMore:      true,
	}

	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
		wantSub    *vibes.Submission
	}{
		{
			name:       "valid",
			path:       "/api/process-mood",
			body:       `{"moodText": "calm"}`,
			wantStatus: http.StatusOK,
			wantSub:    &vibes.Submission{Text: "calm"},
		},
		{
			name:       "request more",
			path:       "/api/process-mood",
			body:       `{"moodText": "calm", "requestMore": true}`,
			wantStatus: http.StatusOK,
			wantSub:    &vibes.Submission{Text: "calm", RequestMore: true},
		},
		{
			name:       "legacy path",
			path:       "/functions/v1/process-mood",
			body:       `{"moodText": "calm"}`,
			wantStatus: http.StatusOK,
			wantSub:    &vibes.Submission{Text: "calm"},
		},
		{name: "missing mood", path: "/api/process-mood", body: `{}`, wantStatus: http.StatusBadRequest},
		{name: "blank mood", path: "/api/process-mood", body: `{"moodText": "   "}`, wantStatus: http.StatusBadRequest},
		{name: "number mood", path: "/api/process-mood", body: `{"moodText": 42}`, wantStatus: http.StatusBadRequest},
		{name: "not json", path: "/api/process-mood", body: `mood=calm`, wantStatus: http.StatusBadRequest},
		{name: "oversized body", path: "/api/process-mood", body: `{"moodText": "` + strings.Repeat("a", MaxBodyBytes) + `"}`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &fakeProcessor{resp: ok}
			rec := do(newTestHandler(t, p, nil), http.MethodPost, tt.path, tt.body, nil)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
				t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
			}

			var body map[string]any
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decoding body: %v", err)
			}

			if tt.wantSub == nil {
				if len(p.calls) != 0 {
					t.Errorf("Process called %d times, want 0", len(p.calls))
				}
				if body["vibeTitle"] != "Express Yourself" {
					t.Errorf("vibeTitle = %v, want %q", body["vibeTitle"], "Express Yourself")
				}
				if body["error"] != invalidMoodMessage {
					t.Errorf("error = %v, want %q", body["error"], invalidMoodMessage)
				}
				if pl, _ := body["playlists"].([]any); len(pl) != 3 {
					t.Errorf("len(playlists) = %d, want 3", len(pl))
				}
				return
			}

			if !reflect.DeepEqual(p.calls, []vibes.Submission{*tt.wantSub}) {
				t.Errorf("Process calls = %+v, want %+v", p.calls, *tt.wantSub)
			}
			if body["vibeTitle"] != "Calm Focus" || body["canRequestMore"] != true {
				t.Errorf("body = %v, want processor response", body)
			}
			if _, hasErr := body["error"]; hasErr {
				t.Error("200 body carries an error field")
			}
		})
	}
}

func TestProcessMood_EndToEnd(t *testing.T) {
	h := newTestHandler(t, vibes.NewService(nil, nil), nil)

	rec := do(h, http.MethodPost, "/api/process-mood", `{"moodText": "I'm tired but I have work to do"}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var got vibes.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	want := vibes.Assemble(mood.Fallback("I'm tired but I have work to do"), spotify.Fallback(3), true)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("response = %+v, want %+v", got, want)
	}

	rec = do(h, http.MethodPost, "/api/process-mood", `{"moodText": "got any weed"}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if !reflect.DeepEqual(got, vibes.Rejected()) {
		t.Errorf("response = %+v, want Rejected()", got)
	}
}

func TestCORSPreflight(t *testing.T) {
	h := newTestHandler(t, &fakeProcessor{}, nil)

	for _, path := range []string{"/api/process-mood", "/api/reports", "/anything"} {
		t.Run(path, func(t *testing.T) {
			rec := do(h, http.MethodOptions, path, "", nil)

			if rec.Code != http.StatusOK {
				t.Errorf("status = %d, want 200", rec.Code)
			}
			if rec.Body.Len() != 0 {
				t.Errorf("body = %q, want empty", rec.Body.String())
			}
			if got := rec.Header().Get("Access-Control-Allow-Methods"); got != "GET, POST, PUT, DELETE, OPTIONS" {
				t.Errorf("Access-Control-Allow-Methods = %q", got)
			}
			if got := rec.Header().Get("Access-Control-Allow-Headers"); got != "Content-Type, Authorization" {
				t.Errorf("Access-Control-Allow-Headers = %q", got)
			}
		})
	}
}

func TestHealth(t *testing.T) {
	rec := do(newTestHandler(t, &fakeProcessor{}, nil), http.MethodGet, "/healthz", "", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"status":"ok"}` {
		t.Errorf("body = %s, want {\"status\":\"ok\"}", got)
	}
}
