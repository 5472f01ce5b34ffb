package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/justestif/go-mood-playlists/internal/spotify"
)

// DefaultListLimit caps how many reports ListForUser returns when the caller
// does not say.
const DefaultListLimit = 50

// ReportRepository handles mood report database operations.
type ReportRepository struct {
	pool *pgxpool.Pool
}

// Create inserts a new report. A zero ID is replaced with a fresh one.
func (r *ReportRepository) Create(ctx context.Context, report *Report) error {
	links, err := encodePlaylists(report.Playlists)
	if err != nil {
		return err
	}

	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}

	query := `
		INSERT INTO mood_reports (id, user_id, mood_text, vibe_title, motivational_message, playlist_links, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING created_at
	`
	err = r.pool.QueryRow(ctx, query,
		report.ID,
		report.UserID,
		report.MoodText,
		report.VibeTitle,
		report.MotivationalMessage,
		links,
	).Scan(&report.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting report: %w", err)
	}
	return nil
}

// ListForUser retrieves a user's reports, newest first.
func (r *ReportRepository) ListForUser(ctx context.Context, userID string, limit int) ([]Report, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	query := `
		SELECT id, user_id, mood_text, vibe_title, motivational_message, playlist_links, created_at
		FROM mood_reports
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying user reports: %w", err)
	}
	defer rows.Close()

	reports := []Report{}
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, *report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reports: %w", err)
	}
	return reports, nil
}

// GetForUser retrieves one report. Reports owned by another user are
// reported as ErrNotFound.
func (r *ReportRepository) GetForUser(ctx context.Context, userID string, id uuid.UUID) (*Report, error) {
	query := `
		SELECT id, user_id, mood_text, vibe_title, motivational_message, playlist_links, created_at
		FROM mood_reports
		WHERE id = $1 AND user_id = $2
	`
	report, err := scanReport(r.pool.QueryRow(ctx, query, id, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return report, nil
}

// DeleteForUser removes one of a user's reports.
func (r *ReportRepository) DeleteForUser(ctx context.Context, userID string, id uuid.UUID) error {
	query := `DELETE FROM mood_reports WHERE id = $1 AND user_id = $2`
	result, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("deleting report: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanReport(row pgx.Row) (*Report, error) {
	var (
		report Report
		links  []byte
	)
	err := row.Scan(
		&report.ID,
		&report.UserID,
		&report.MoodText,
		&report.VibeTitle,
		&report.MotivationalMessage,
		&links,
		&report.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scanning report: %w", err)
	}

	report.Playlists, err = decodePlaylists(links)
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func encodePlaylists(playlists []spotify.Playlist) ([]byte, error) {
	if playlists == nil {
		playlists = []spotify.Playlist{}
	}
	b, err := json.Marshal(playlists)
	if err != nil {
		return nil, fmt.Errorf("encoding playlist links: %w", err)
	}
	return b, nil
}

func decodePlaylists(b []byte) ([]spotify.Playlist, error) {
	playlists := []spotify.Playlist{}
	if len(b) == 0 {
		return playlists, nil
	}
	if err := json.Unmarshal(b, &playlists); err != nil {
		return nil, fmt.Errorf("decoding playlist links: %w", err)
	}
	return playlists, nil
}
