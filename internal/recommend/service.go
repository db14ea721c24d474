package recommend

import (
	"context"
	"errors"
	"fmt"

	"movierec-backend/internal/catalog"
	"movierec-backend/internal/llm"
	"movierec-backend/internal/mood"
	"movierec-backend/internal/quiz"
	"movierec-backend/internal/session"
)

// Catalog is the full catalog surface the service depends on. Both the plain
// and the cached TMDB clients satisfy it.
type Catalog interface {
	Discoverer
	Details(ctx context.Context, apiKey string, movieID int, language string) (catalog.MovieDetail, error)
	Credits(ctx context.Context, apiKey string, movieID int, limit int) ([]catalog.CastMember, error)
	Videos(ctx context.Context, apiKey string, movieID int, language string) ([]catalog.Video, error)
	WatchProviders(ctx context.Context, apiKey string, movieID int, region string) (catalog.ProviderInfo, error)
}

// Defaults are the configured catalog query parameters; requests may
// override a subset per call.
type Defaults struct {
	Language     string
	Region       string
	SortBy       string
	MinVoteCount int
	MinRating    float64
	ResultCount  int
	MaxPages     int
	CastLimit    int
}

// Service runs the recommendation flows: quiz answers or mood text in,
// candidate list plus optional finalist out.
type Service struct {
	Catalog  Catalog
	Oracle   llm.Client
	Sessions *session.Store
	Defaults Defaults
}

// Sentinel errors for missing per-session credentials. They block the action
// only; the session stays usable.
var (
	ErrMissingTMDBKey   = errors.New("TMDB API key not set for session")
	ErrMissingOpenAIKey = errors.New("OpenAI API key not set for session")
)

// ErrUpstream marks failures of external catalog calls so the HTTP layer can
// distinguish them from internal faults.
var ErrUpstream = errors.New("upstream fetch failed")

// Filters are optional per-request overrides of the configured defaults.
type Filters struct {
	Language     string   `json:"language"`
	Region       string   `json:"region"`
	MinVoteCount *int     `json:"minVoteCount"`
	MinRating    *float64 `json:"minRating"`
	Count        *int     `json:"count"`
}

// QuizInput is the structured-quiz recommendation request.
type QuizInput struct {
	Answers      quiz.Answers
	Situation    string
	PickFinalist bool
	Filters      Filters
}

// MoodInput is the free-text recommendation request.
type MoodInput struct {
	Text         string
	Override     string
	PickFinalist bool
	Filters      Filters
}

// MovieView is one candidate shaped for the results view.
type MovieView struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Rating      float64 `json:"rating"`
	VoteCount   int     `json:"voteCount"`
	Overview    string  `json:"overview"`
	PosterURL   string  `json:"posterUrl,omitempty"`
	ReleaseDate string  `json:"releaseDate"`
}

// Result is a finished recommendation.
type Result struct {
	Label        string      `json:"label"`
	GenreIDs     []int       `json:"genreIds"`
	Rationale    string      `json:"rationale"`
	Distribution []int       `json:"distribution,omitempty"`
	Candidates   []MovieView `json:"candidates"`
	Finalist     *Finalist   `json:"finalist,omitempty"`
}

// QuizRecommend scores the five answers, resolves a genre and aggregates
// candidates, optionally asking the oracle for a finalist.
func (s *Service) QuizRecommend(ctx context.Context, sessionID string, in QuizInput) (Result, error) {
	sess, err := s.Sessions.Get(sessionID)
	if err != nil {
		return Result{}, err
	}
	if sess.TMDBKey == "" {
		return Result{}, ErrMissingTMDBKey
	}
	if in.PickFinalist && sess.OpenAIKey == "" {
		return Result{}, ErrMissingOpenAIKey
	}

	dist, cat, err := quiz.Score(in.Answers)
	if err != nil {
		return Result{}, err
	}
	genre := quiz.Resolve(cat, in.Answers[1], in.Answers[4])

	movies, err := s.aggregate(ctx, sess, genre.GenreIDs, in.Filters)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	result := Result{
		Label:        genre.Label,
		GenreIDs:     genre.GenreIDs,
		Rationale:    genre.Rationale,
		Distribution: dist[:],
		Candidates:   toViews(movies),
	}
	if in.PickFinalist {
		result.Finalist = SelectFinalist(ctx, s.Oracle, sess.OpenAIKey, in.Situation, genre.Label, movies)
	}
	return result, nil
}

// MoodRecommend classifies free text into a mood label and aggregates
// candidates for its genres, optionally asking the oracle for a finalist.
func (s *Service) MoodRecommend(ctx context.Context, sessionID string, in MoodInput) (Result, error) {
	sess, err := s.Sessions.Get(sessionID)
	if err != nil {
		return Result{}, err
	}
	if sess.TMDBKey == "" {
		return Result{}, ErrMissingTMDBKey
	}
	if in.PickFinalist && sess.OpenAIKey == "" {
		return Result{}, ErrMissingOpenAIKey
	}

	classified := mood.Classify(in.Text, in.Override)

	movies, err := s.aggregate(ctx, sess, classified.GenreIDs, in.Filters)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	result := Result{
		Label:      string(classified.Label),
		GenreIDs:   classified.GenreIDs,
		Rationale:  classified.Rationale,
		Candidates: toViews(movies),
	}
	if in.PickFinalist {
		result.Finalist = SelectFinalist(ctx, s.Oracle, sess.OpenAIKey, in.Text, string(classified.Label), movies)
	}
	return result, nil
}

// DetailOptions are the feature toggles for the enriched title view.
type DetailOptions struct {
	IncludeCast      bool
	IncludeTrailer   bool
	IncludeProviders bool
}

// DetailView is the enriched per-title result.
type DetailView struct {
	MovieView
	Runtime    int                   `json:"runtime,omitempty"`
	Tagline    string                `json:"tagline,omitempty"`
	Genres     []string              `json:"genres,omitempty"`
	Cast       []string              `json:"cast,omitempty"`
	TrailerURL string                `json:"trailerUrl,omitempty"`
	Providers  *catalog.ProviderInfo `json:"providers,omitempty"`
	Watched    bool                  `json:"watched"`
}

// TitleDetail fetches the enriched view of one title, honoring the toggles.
func (s *Service) TitleDetail(ctx context.Context, sessionID string, movieID int, opts DetailOptions) (DetailView, error) {
	sess, err := s.Sessions.Get(sessionID)
	if err != nil {
		return DetailView{}, err
	}
	if sess.TMDBKey == "" {
		return DetailView{}, ErrMissingTMDBKey
	}

	detail, err := s.Catalog.Details(ctx, sess.TMDBKey, movieID, s.Defaults.Language)
	if err != nil {
		return DetailView{}, fmt.Errorf("%w: details: %w", ErrUpstream, err)
	}

	_, watched := sess.Watched[movieID]
	view := DetailView{
		MovieView: toView(detail.Movie),
		Runtime:   detail.Runtime,
		Tagline:   detail.Tagline,
		Watched:   watched,
	}
	for _, g := range detail.Genres {
		view.Genres = append(view.Genres, g.Name)
	}

	if opts.IncludeCast {
		cast, err := s.Catalog.Credits(ctx, sess.TMDBKey, movieID, s.Defaults.CastLimit)
		if err != nil {
			return DetailView{}, fmt.Errorf("%w: credits: %w", ErrUpstream, err)
		}
		for _, member := range cast {
			view.Cast = append(view.Cast, member.Name)
		}
	}
	if opts.IncludeTrailer {
		videos, err := s.Catalog.Videos(ctx, sess.TMDBKey, movieID, s.Defaults.Language)
		if err != nil {
			return DetailView{}, fmt.Errorf("%w: videos: %w", ErrUpstream, err)
		}
		if trailer, ok := catalog.FirstTrailer(videos); ok {
			view.TrailerURL = trailer.TrailerURL()
		}
	}
	if opts.IncludeProviders {
		info, err := s.Catalog.WatchProviders(ctx, sess.TMDBKey, movieID, s.Defaults.Region)
		if err != nil {
			return DetailView{}, fmt.Errorf("%w: providers: %w", ErrUpstream, err)
		}
		view.Providers = &info
	}

	return view, nil
}

func (s *Service) aggregate(ctx context.Context, sess session.Session, genreIDs []int, f Filters) ([]catalog.Movie, error) {
	q := catalog.DiscoverQuery{
		GenreIDs:     genreIDs,
		Language:     s.Defaults.Language,
		Region:       s.Defaults.Region,
		SortBy:       s.Defaults.SortBy,
		MinVoteCount: s.Defaults.MinVoteCount,
		MinRating:    s.Defaults.MinRating,
	}
	if f.Language != "" {
		q.Language = f.Language
	}
	if f.Region != "" {
		q.Region = f.Region
	}
	if f.MinVoteCount != nil {
		q.MinVoteCount = *f.MinVoteCount
	}
	if f.MinRating != nil {
		q.MinRating = *f.MinRating
	}
	count := s.Defaults.ResultCount
	if f.Count != nil && *f.Count > 0 {
		count = *f.Count
	}
	return Aggregate(ctx, s.Catalog, sess.TMDBKey, count, sess.Watched, q, s.Defaults.MaxPages)
}

func toViews(movies []catalog.Movie) []MovieView {
	out := make([]MovieView, 0, len(movies))
	for _, m := range movies {
		out = append(out, toView(m))
	}
	return out
}

func toView(m catalog.Movie) MovieView {
	return MovieView{
		ID:          m.ID,
		Title:       m.Title,
		Rating:      m.Rating,
		VoteCount:   m.VoteCount,
		Overview:    m.ShortOverview(),
		PosterURL:   m.PosterURL(),
		ReleaseDate: m.ReleaseDate,
	}
}
