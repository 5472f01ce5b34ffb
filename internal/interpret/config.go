// Package interpret asks a generative model to read a mood and falls back to
// the keyword tables in package mood whenever the model is unavailable or its
// answer cannot be used.
package interpret

import "time"

// Defaults applied when Config leaves a field empty.
const (
	DefaultModel   = "gemini-2.0-flash"
	DefaultTimeout = 8 * time.Second
)

// Config holds Gemini API configuration. An empty APIKey is valid and means
// every interpretation comes from the keyword fallback.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// Enabled reports whether a model call will be attempted.
func (c Config) Enabled() bool {
	return c.APIKey != ""
}

func (c Config) model() string {
	if c.Model == "" {
		return DefaultModel
	}
	return c.Model
}

func (c Config) timeout() time.Duration {
	if c.Timeout <= 0 {
		return DefaultTimeout
	}
	return c.Timeout
}
