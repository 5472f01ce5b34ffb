package vibes

import (
	"context"
	"log"
	"strings"

	"github.com/justestif/go-mood-playlists/internal/mood"
	"github.com/justestif/go-mood-playlists/internal/safety"
	"github.com/justestif/go-mood-playlists/internal/spotify"
)

// MoreLimit is the playlist count requested when a user asks for more.
const MoreLimit = 6

// Interpreter reads a mood. Implementations must not fail.
type Interpreter interface {
	Interpret(ctx context.Context, moodText string) mood.Interpretation
}

// Searcher finds playlists for a query. Implementations must return at least
// one playlist.
type Searcher interface {
	Search(ctx context.Context, query string, n int) []spotify.Playlist
}

// Submission is one mood entry from a user.
type Submission struct {
	Text        string
	RequestMore bool
}

// Service processes mood submissions. It is safe for concurrent use as long
// as its collaborators are.
type Service struct {
	interpreter Interpreter
	catalog     Searcher
}

// NewService creates a Service. Nil collaborators fall back to the keyword
// interpretation and the fixed playlist set.
func NewService(interpreter Interpreter, catalog Searcher) *Service {
	return &Service{
		interpreter: interpreter,
		catalog:     catalog,
	}
}

// Process turns a submission into a response. It never fails: blank input,
// rejected input and internal panics each map to a canned response.
func (s *Service) Process(ctx context.Context, sub Submission) (resp Response) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("vibes: recovered from panic: %v", r)
			resp = Failure()
		}
	}()

	trimmed := strings.TrimSpace(sub.Text)
	if trimmed == "" {
		return InvalidInput()
	}

	text := safety.Sanitize(trimmed)
	if !safety.IsAppropriate(text) {
		return Rejected()
	}

	interp := s.interpret(ctx, text)

	n := spotify.DefaultLimit
	if sub.RequestMore {
		n = MoreLimit
	}
	playlists := s.search(ctx, interp.SpotifyQuery, n)

	canRequestMore := !sub.RequestMore && len(playlists) >= spotify.DefaultLimit
	return Assemble(interp, playlists, canRequestMore)
}

func (s *Service) interpret(ctx context.Context, text string) mood.Interpretation {
	if s.interpreter == nil {
		return mood.Fallback(text)
	}
	return s.interpreter.Interpret(ctx, text)
}

func (s *Service) search(ctx context.Context, query string, n int) []spotify.Playlist {
	if s.catalog == nil {
		return spotify.Fallback(n)
	}
	return s.catalog.Search(ctx, query, n)
}

// InvalidInput is the response for a missing or blank mood.
func InvalidInput() Response {
	return canned("Express Yourself", "Tell us how you're feeling today")
}

// Rejected is the response for a mood that fails the safety classifier.
func Rejected() Response {
	return canned("Let's Keep It Positive", "Music brings out the best in us")
}

// Failure is the response when processing fails unexpectedly.
func Failure() Response {
	return canned("Something Went Wrong", "Don't worry, we've got backup vibes for you")
}

func canned(title, message string) Response {
	return Response{
		VibeTitle:           title,
		MotivationalMessage: message,
		Playlists:           spotify.Fallback(spotify.DefaultLimit),
	}
}
