package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func testQuery(page int) DiscoverQuery {
	return DiscoverQuery{
		GenreIDs:     []int{10749, 18},
		Language:     "ko-KR",
		Region:       "KR",
		SortBy:       "popularity.desc",
		MinVoteCount: 100,
		MinRating:    6.5,
		Page:         page,
	}
}

func TestDiscoverSendsExpectedParams(t *testing.T) {
	var gotPath string
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = map[string]string{}
		for k, v := range r.URL.Query() {
			gotQuery[k] = v[0]
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"page":2,"results":[{"id":603,"title":"The Matrix","vote_average":8.2,"vote_count":24000,"overview":"o","poster_path":"/p.jpg","release_date":"1999-03-31"}],"total_pages":10}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	movies, err := client.Discover(context.Background(), "test-key", testQuery(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(movies) != 1 || movies[0].ID != 603 {
		t.Fatalf("unexpected movies: %+v", movies)
	}

	if gotPath != "/discover/movie" {
		t.Fatalf("path %q, want /discover/movie", gotPath)
	}
	want := map[string]string{
		"api_key":          "test-key",
		"with_genres":      "10749,18",
		"language":         "ko-KR",
		"region":           "KR",
		"sort_by":          "popularity.desc",
		"include_adult":    "false",
		"vote_count.gte":   "100",
		"vote_average.gte": "6.5",
		"page":             "2",
	}
	for k, v := range want {
		if gotQuery[k] != v {
			t.Fatalf("query %s = %q, want %q", k, gotQuery[k], v)
		}
	}
}

func TestDiscoverNon2xxIsStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"status_message":"Invalid API key"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	_, err := client.Discover(context.Background(), "bad-key", testQuery(1))

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.Status != http.StatusUnauthorized {
		t.Fatalf("status %d, want 401", statusErr.Status)
	}
}

func TestDiscoverMalformedPayloadIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results": not json`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	if _, err := client.Discover(context.Background(), "key", testQuery(1)); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestDetailLookups(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/movie/603":
			_, _ = w.Write([]byte(`{"id":603,"title":"The Matrix","runtime":136,"tagline":"t","genres":[{"id":878,"name":"SF"}]}`))
		case r.URL.Path == "/movie/603/credits":
			_, _ = w.Write([]byte(`{"cast":[{"name":"Keanu Reeves","character":"Neo","order":0},{"name":"Carrie-Anne Moss","character":"Trinity","order":1},{"name":"Extra","character":"x","order":2}]}`))
		case r.URL.Path == "/movie/603/videos":
			_, _ = w.Write([]byte(`{"results":[{"key":"abc","site":"YouTube","type":"Teaser","official":true},{"key":"def","site":"YouTube","type":"Trailer","official":false},{"key":"ghi","site":"YouTube","type":"Trailer","official":true}]}`))
		case r.URL.Path == "/movie/603/watch/providers":
			_, _ = w.Write([]byte(`{"results":{"KR":{"flatrate":[{"provider_name":"Netflix"}]}}}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	ctx := context.Background()

	detail, err := client.Details(ctx, "key", 603, "ko-KR")
	if err != nil {
		t.Fatalf("details: %v", err)
	}
	if detail.Runtime != 136 || len(detail.Genres) != 1 || detail.Genres[0].Name != "SF" {
		t.Fatalf("unexpected detail: %+v", detail)
	}

	cast, err := client.Credits(ctx, "key", 603, 2)
	if err != nil {
		t.Fatalf("credits: %v", err)
	}
	if len(cast) != 2 || cast[0].Name != "Keanu Reeves" {
		t.Fatalf("unexpected cast: %+v", cast)
	}

	videos, err := client.Videos(ctx, "key", 603, "ko-KR")
	if err != nil {
		t.Fatalf("videos: %v", err)
	}
	trailer, ok := FirstTrailer(videos)
	if !ok || trailer.Key != "ghi" {
		t.Fatalf("expected official trailer ghi, got %+v ok=%v", trailer, ok)
	}

	providers, err := client.WatchProviders(ctx, "key", 603, "KR")
	if err != nil {
		t.Fatalf("providers: %v", err)
	}
	if len(providers.Flatrate) != 1 || providers.Flatrate[0].Name != "Netflix" {
		t.Fatalf("unexpected providers: %+v", providers)
	}
}

func TestTruncateOverview(t *testing.T) {
	short := "짧은 줄거리"
	if got := TruncateOverview(short, 280); got != short {
		t.Fatalf("short overview changed: %q", got)
	}

	long := strings.Repeat("가", 300)
	got := TruncateOverview(long, 280)
	if !strings.HasSuffix(got, "…") {
		t.Fatalf("expected ellipsis suffix, got %q", got[len(got)-9:])
	}
	if count := len([]rune(got)); count != 281 {
		t.Fatalf("truncated to %d runes, want 281", count)
	}
}

func TestPosterURL(t *testing.T) {
	m := Movie{PosterPath: "/p.jpg"}
	if got := m.PosterURL(); got != "https://image.tmdb.org/t/p/w500/p.jpg" {
		t.Fatalf("poster url %q", got)
	}
	if got := (Movie{}).PosterURL(); got != "" {
		t.Fatalf("expected empty poster url, got %q", got)
	}
}
