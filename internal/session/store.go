// Package session holds per-session state: the two API keys the user typed
// in and the set of movies they marked as watched. Nothing here survives the
// process; the spec forbids persistence.
package session

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned for unknown session ids.
var ErrNotFound = errors.New("session not found")

// Session is a snapshot of one session's state.
type Session struct {
	ID        string
	TMDBKey   string
	OpenAIKey string
	Watched   map[int]struct{}
	CreatedAt time.Time
}

// Store keeps sessions in memory and is safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	byID map[string]*Session
}

// NewStore constructs a Store.
func NewStore() *Store {
	return &Store{byID: make(map[string]*Session)}
}

// Create registers a new session and returns its id.
func (s *Store) Create() Session {
	sess := &Session{
		ID:        uuid.NewString(),
		Watched:   make(map[int]struct{}),
		CreatedAt: time.Now().UTC(),
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[sess.ID] = sess
	return snapshot(sess)
}

// Get returns a snapshot of the session.
func (s *Store) Get(id string) (Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.byID[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	return snapshot(sess), nil
}

// SetKeys stores the per-session API keys. An empty value leaves the
// existing key untouched so the two keys can be set independently.
func (s *Store) SetKeys(id, tmdbKey, openAIKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.byID[id]
	if !ok {
		return ErrNotFound
	}
	if tmdbKey != "" {
		sess.TMDBKey = tmdbKey
	}
	if openAIKey != "" {
		sess.OpenAIKey = openAIKey
	}
	return nil
}

// AddWatched marks a movie as watched.
func (s *Store) AddWatched(id string, movieID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.byID[id]
	if !ok {
		return ErrNotFound
	}
	sess.Watched[movieID] = struct{}{}
	return nil
}

// RemoveWatched unmarks a movie.
func (s *Store) RemoveWatched(id string, movieID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.byID[id]
	if !ok {
		return ErrNotFound
	}
	delete(sess.Watched, movieID)
	return nil
}

// ClearWatched empties the watched set.
func (s *Store) ClearWatched(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.byID[id]
	if !ok {
		return ErrNotFound
	}
	sess.Watched = make(map[int]struct{})
	return nil
}

// WatchedIDs returns the watched movie ids in ascending order.
func (s *Store) WatchedIDs(id string) ([]int, error) {
	sess, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	ids := make([]int, 0, len(sess.Watched))
	for movieID := range sess.Watched {
		ids = append(ids, movieID)
	}
	sort.Ints(ids)
	return ids, nil
}

func snapshot(sess *Session) Session {
	watched := make(map[int]struct{}, len(sess.Watched))
	for id := range sess.Watched {
		watched[id] = struct{}{}
	}
	out := *sess
	out.Watched = watched
	return out
}
