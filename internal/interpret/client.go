package interpret

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/justestif/go-mood-playlists/internal/mood"
)

// Generator produces raw model text for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Client turns mood text into an Interpretation.
type Client struct {
	gen     Generator
	timeout time.Duration
}

// New creates a Client from cfg. Without an API key the Client never calls
// out and every result comes from mood.Fallback.
func New(ctx context.Context, cfg Config) (*Client, error) {
	c := &Client{timeout: cfg.timeout()}
	if !cfg.Enabled() {
		return c, nil
	}

	gen, err := newGeminiGenerator(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating gemini generator: %w", err)
	}
	c.gen = gen
	return c, nil
}

// NewWithGenerator creates a Client around an existing Generator. A nil gen
// behaves like a missing API key.
func NewWithGenerator(gen Generator, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{gen: gen, timeout: timeout}
}

// Interpret reads a mood. It never fails: model errors, timeouts, malformed
// output and unsafe fields all resolve to the keyword fallback, field by field
// where possible.
func (c *Client) Interpret(ctx context.Context, moodText string) (interp mood.Interpretation) {
	fallback := mood.Fallback(moodText)

	defer func() {
		if r := recover(); r != nil {
			log.Printf("interpret: recovered from panic: %v", r)
			interp = fallback
		}
	}()

	if c == nil || c.gen == nil {
		return fallback
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	raw, err := c.gen.Generate(ctx, buildPrompt(moodText))
	if err != nil {
		log.Printf("interpret: model call failed: %v", err)
		return fallback
	}

	return parse(raw, fallback)
}
