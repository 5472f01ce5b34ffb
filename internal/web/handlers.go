package web

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/justestif/go-mood-playlists/internal/vibes"
)

// MoodProcessor turns a submission into a response. It must not fail.
type MoodProcessor interface {
	Process(ctx context.Context, sub vibes.Submission) vibes.Response
}

// Handlers contains HTTP handlers for the mood API.
type Handlers struct {
	processor MoodProcessor
	reports   ReportStore
}

// NewHandlers creates a new Handlers instance. reports may be nil.
func NewHandlers(processor MoodProcessor, reports ReportStore) *Handlers {
	return &Handlers{
		processor: processor,
		reports:   reports,
	}
}

type moodRequest struct {
	MoodText    *string `json:"moodText"`
	RequestMore bool    `json:"requestMore"`
}

// invalidMoodResponse is the 400 body: the usual payload plus an error.
type invalidMoodResponse struct {
	vibes.Response
	Error string `json:"error"`
}

const invalidMoodMessage = "Valid mood text is required"

// Health reports liveness (GET /healthz).
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ProcessMood interprets a mood and suggests playlists (POST /api/process-mood).
// Anything other than a malformed request is answered with 200.
func (h *Handlers) ProcessMood(w http.ResponseWriter, r *http.Request) {
	var req moodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.MoodText == nil || strings.TrimSpace(*req.MoodText) == "" {
		writeJSON(w, http.StatusBadRequest, invalidMoodResponse{
			Response: vibes.InvalidInput(),
			Error:    invalidMoodMessage,
		})
		return
	}

	resp := h.processor.Process(r.Context(), vibes.Submission{
		Text:        *req.MoodText,
		RequestMore: req.RequestMore,
	})
	writeJSON(w, http.StatusOK, resp)
}
