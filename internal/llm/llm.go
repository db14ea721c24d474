package llm

import (
	"context"
	"encoding/json"
	"errors"
)

// Client abstracts the ranking oracle that picks one finalist from a
// candidate list. Implementations return the oracle's raw payload; parsing
// and the deterministic fallback live with the caller.
type Client interface {
	PickFinalist(ctx context.Context, input PickInput) (json.RawMessage, error)
}

// Candidate is the trimmed view of a movie the oracle is allowed to see.
type Candidate struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Rating      float64 `json:"rating"`
	VoteCount   int     `json:"voteCount"`
	ReleaseDate string  `json:"releaseDate"`
	Overview    string  `json:"overview"`
}

// PickInput captures everything one oracle call needs. The API key rides
// along per call because it is session-supplied.
type PickInput struct {
	APIKey     string
	Situation  string
	MoodLabel  string
	Candidates []Candidate
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("LLM provider not configured")

// PlaceholderClient is a stub implementation used when no provider is wired.
type PlaceholderClient struct{}

// PickFinalist returns ErrNotConfigured.
func (PlaceholderClient) PickFinalist(ctx context.Context, input PickInput) (json.RawMessage, error) {
	_ = ctx
	_ = input
	return nil, ErrNotConfigured
}
