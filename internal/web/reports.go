package web

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/justestif/go-mood-playlists/internal/db"
	"github.com/justestif/go-mood-playlists/internal/mood"
	"github.com/justestif/go-mood-playlists/internal/safety"
	"github.com/justestif/go-mood-playlists/internal/spotify"
	"github.com/justestif/go-mood-playlists/internal/vibes"
)

// ReportStore persists saved reports. *db.ReportRepository satisfies it.
type ReportStore interface {
	Create(ctx context.Context, report *db.Report) error
	ListForUser(ctx context.Context, userID string, limit int) ([]db.Report, error)
	GetForUser(ctx context.Context, userID string, id uuid.UUID) (*db.Report, error)
	DeleteForUser(ctx context.Context, userID string, id uuid.UUID) error
}

type reportRequest struct {
	MoodText            string             `json:"moodText"`
	VibeTitle           string             `json:"vibeTitle"`
	MotivationalMessage string             `json:"motivationalMessage"`
	Playlists           []spotify.Playlist `json:"playlists"`
}

func (h *Handlers) requireReports(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.reports == nil {
			writeError(w, http.StatusServiceUnavailable, "reports are not available")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// CreateReport saves a mood reading for the caller (POST /api/reports).
// Stored content goes through the same safety pass as live responses.
func (h *Handlers) CreateReport(w http.ResponseWriter, r *http.Request) {
	var req reportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	moodText := strings.TrimSpace(req.MoodText)
	if moodText == "" {
		writeError(w, http.StatusBadRequest, invalidMoodMessage)
		return
	}
	moodText = safety.Sanitize(moodText)
	if !safety.IsAppropriate(moodText) {
		writeError(w, http.StatusBadRequest, "mood text is not allowed")
		return
	}

	clean := vibes.Assemble(mood.Interpretation{
		VibeTitle:           req.VibeTitle,
		MotivationalMessage: req.MotivationalMessage,
	}, req.Playlists, false)

	report := &db.Report{
		UserID:              userID(r),
		MoodText:            moodText,
		VibeTitle:           clean.VibeTitle,
		MotivationalMessage: clean.MotivationalMessage,
		Playlists:           clean.Playlists,
	}
	if err := h.reports.Create(r.Context(), report); err != nil {
		log.Printf("web: saving report: %v", err)
		writeError(w, http.StatusInternalServerError, "could not save report")
		return
	}

	writeJSON(w, http.StatusCreated, report)
}

// ListReports returns the caller's reports, newest first (GET /api/reports).
func (h *Handlers) ListReports(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = min(n, db.DefaultListLimit)
	}

	reports, err := h.reports.ListForUser(r.Context(), userID(r), limit)
	if err != nil {
		log.Printf("web: listing reports: %v", err)
		writeError(w, http.StatusInternalServerError, "could not load reports")
		return
	}

	writeJSON(w, http.StatusOK, reports)
}

// GetReport returns one of the caller's reports (GET /api/reports/{id}).
func (h *Handlers) GetReport(w http.ResponseWriter, r *http.Request) {
	id, ok := reportID(w, r)
	if !ok {
		return
	}

	report, err := h.reports.GetForUser(r.Context(), userID(r), id)
	if errors.Is(err, db.ErrNotFound) {
		writeError(w, http.StatusNotFound, "report not found")
		return
	}
	if err != nil {
		log.Printf("web: loading report %s: %v", id, err)
		writeError(w, http.StatusInternalServerError, "could not load report")
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// DeleteReport removes one of the caller's reports (DELETE /api/reports/{id}).
func (h *Handlers) DeleteReport(w http.ResponseWriter, r *http.Request) {
	id, ok := reportID(w, r)
	if !ok {
		return
	}

	err := h.reports.DeleteForUser(r.Context(), userID(r), id)
	if errors.Is(err, db.ErrNotFound) {
		writeError(w, http.StatusNotFound, "report not found")
		return
	}
	if err != nil {
		log.Printf("web: deleting report %s: %v", id, err)
		writeError(w, http.StatusInternalServerError, "could not delete report")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func reportID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid report id")
		return uuid.Nil, false
	}
	return id, true
}
