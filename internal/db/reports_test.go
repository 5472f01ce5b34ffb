package db

import (
	"context"
	"errors"
	"os"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/justestif/go-mood-playlists/internal/spotify"
)

func TestConfigEnabled(t *testing.T) {
	if (Config{}).Enabled() {
		t.Error("Config{}.Enabled() = true, want false")
	}
	if !(Config{URL: "postgres://localhost/moods"}).Enabled() {
		t.Error("Enabled() = false with a URL")
	}
}

func TestPlaylistLinks(t *testing.T) {
	tests := []struct {
		name      string
		playlists []spotify.Playlist
		wantJSON  string
	}{
		{name: "nil", playlists: nil, wantJSON: "[]"},
		{name: "empty", playlists: []spotify.Playlist{}, wantJSON: "[]"},
		{
			name:      "one",
			playlists: []spotify.Playlist{{Name: "Calm", URL: "https://open.spotify.com/playlist/a", ImageURL: "https://i.scdn.co/image/a", Description: "12 songs"}},
			wantJSON:  `[{"name":"Calm","url":"https://open.spotify.com/playlist/a","imageUrl":"https://i.scdn.co/image/a","description":"12 songs"}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := encodePlaylists(tt.playlists)
			if err != nil {
				t.Fatalf("encodePlaylists() error = %v", err)
			}
			if string(b) != tt.wantJSON {
				t.Errorf("encodePlaylists() = %s, want %s", b, tt.wantJSON)
			}

			got, err := decodePlaylists(b)
			if err != nil {
				t.Fatalf("decodePlaylists() error = %v", err)
			}
			want := tt.playlists
			if want == nil {
				want = []spotify.Playlist{}
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("decodePlaylists() = %+v, want %+v", got, want)
			}
		})
	}
}

func TestDecodePlaylists_Invalid(t *testing.T) {
	if _, err := decodePlaylists([]byte(`{"name":`)); err == nil {
		t.Error("decodePlaylists() error = nil, want error")
	}
	got, err := decodePlaylists(nil)
	if err != nil || got == nil || len(got) != 0 {
		t.Errorf("decodePlaylists(nil) = %v, %v, want empty slice", got, err)
	}
}

// openTestDB connects to TEST_DATABASE_URL or skips the test.
func openTestDB(t *testing.T) *DB {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	database, err := New(ctx, url)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(database.Close)

	if err := database.Migrate(ctx); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	return database
}

func TestReportRepository(t *testing.T) {
	database := openTestDB(t)
	repo := database.Reports()
	ctx := context.Background()

	userID := "test-" + uuid.NewString()
	otherID := "test-" + uuid.NewString()

	first := &Report{
		UserID:              userID,
		MoodText:            "tired but hopeful",
		VibeTitle:           "Gentle Rest",
		MotivationalMessage: "Rest is productive too",
		Playlists:           spotify.Fallback(2),
	}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if first.ID == uuid.Nil || first.CreatedAt.IsZero() {
		t.Fatalf("Create() left ID %v CreatedAt %v", first.ID, first.CreatedAt)
	}

	time.Sleep(10 * time.Millisecond)
	second := &Report{UserID: userID, MoodText: "calm", VibeTitle: "Calm Focus", MotivationalMessage: "Breathe deeply"}
	if err := repo.Create(ctx, second); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	list, err := repo.ListForUser(ctx, userID, 0)
	if err != nil {
		t.Fatalf("ListForUser() error = %v", err)
	}
	if len(list) != 2 || list[0].ID != second.ID || list[1].ID != first.ID {
		t.Fatalf("ListForUser() = %+v, want newest first", list)
	}
	if !reflect.DeepEqual(list[1].Playlists, spotify.Fallback(2)) {
		t.Errorf("Playlists = %+v, want round trip", list[1].Playlists)
	}
	if len(list[0].Playlists) != 0 {
		t.Errorf("Playlists = %+v, want empty", list[0].Playlists)
	}

	got, err := repo.GetForUser(ctx, userID, first.ID)
	if err != nil {
		t.Fatalf("GetForUser() error = %v", err)
	}
	if got.VibeTitle != "Gentle Rest" {
		t.Errorf("VibeTitle = %q, want %q", got.VibeTitle, "Gentle Rest")
	}

	if _, err := repo.GetForUser(ctx, otherID, first.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetForUser() other user error = %v, want ErrNotFound", err)
	}
	if err := repo.DeleteForUser(ctx, otherID, first.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteForUser() other user error = %v, want ErrNotFound", err)
	}

	for _, r := range list {
		if err := repo.DeleteForUser(ctx, userID, r.ID); err != nil {
			t.Errorf("DeleteForUser() error = %v", err)
		}
	}
	if _, err := repo.GetForUser(ctx, userID, first.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetForUser() after delete error = %v, want ErrNotFound", err)
	}
}
