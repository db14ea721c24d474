package recommend

import (
	"context"
	"errors"
	"testing"

	"movierec-backend/internal/catalog"
)

type pagedDiscoverer struct {
	pages    map[int][]catalog.Movie
	failPage int
	calls    int
}

var errPageBoom = errors.New("page fetch failed")

func (f *pagedDiscoverer) Discover(ctx context.Context, apiKey string, q catalog.DiscoverQuery) ([]catalog.Movie, error) {
	f.calls++
	if f.failPage != 0 && q.Page == f.failPage {
		return nil, errPageBoom
	}
	return f.pages[q.Page], nil
}

func movies(ids ...int) []catalog.Movie {
	out := make([]catalog.Movie, 0, len(ids))
	for _, id := range ids {
		out = append(out, catalog.Movie{ID: id, Title: "m"})
	}
	return out
}

func TestAggregateDeduplicatesAcrossPages(t *testing.T) {
	cat := &pagedDiscoverer{pages: map[int][]catalog.Movie{
		1: movies(1, 2, 3),
		2: movies(2, 3, 4),
		3: movies(4, 5),
	}}

	got, err := Aggregate(context.Background(), cat, "key", 10, nil, catalog.DiscoverQuery{}, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{1, 2, 3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("got %d movies, want %d: %+v", len(got), len(want), got)
	}
	for i, m := range got {
		if m.ID != want[i] {
			t.Fatalf("movie %d has id %d, want %d (order must be preserved)", i, m.ID, want[i])
		}
	}
}

func TestAggregateRespectsExclusionSet(t *testing.T) {
	cat := &pagedDiscoverer{pages: map[int][]catalog.Movie{
		1: movies(1, 2, 3, 4, 5),
	}}
	excluded := map[int]struct{}{2: {}, 4: {}}

	got, err := Aggregate(context.Background(), cat, "key", 10, excluded, catalog.DiscoverQuery{}, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, m := range got {
		if _, bad := excluded[m.ID]; bad {
			t.Fatalf("excluded id %d was admitted", m.ID)
		}
	}
	if len(got) != 3 {
		t.Fatalf("got %d movies, want 3", len(got))
	}
}

func TestAggregateShortCircuitsOnTarget(t *testing.T) {
	cat := &pagedDiscoverer{pages: map[int][]catalog.Movie{
		1: movies(1, 2, 3, 4, 5),
		2: movies(6, 7, 8),
	}}

	got, err := Aggregate(context.Background(), cat, "key", 5, nil, catalog.DiscoverQuery{}, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("got %d movies, want 5", len(got))
	}
	if cat.calls != 1 {
		t.Fatalf("made %d page requests, want 1", cat.calls)
	}
}

func TestAggregatePartialResultIsNotAnError(t *testing.T) {
	cat := &pagedDiscoverer{pages: map[int][]catalog.Movie{
		1: movies(1, 2),
		2: movies(2, 3),
	}}

	got, err := Aggregate(context.Background(), cat, "key", 5, nil, catalog.DiscoverQuery{}, 5)
	if err != nil {
		t.Fatalf("partial result must not be an error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d movies, want 3", len(got))
	}
	if cat.calls != 5 {
		t.Fatalf("made %d page requests, want 5 (page bound exhausted)", cat.calls)
	}
}

func TestAggregateZeroResultIsNotAnError(t *testing.T) {
	cat := &pagedDiscoverer{pages: map[int][]catalog.Movie{}}

	got, err := Aggregate(context.Background(), cat, "key", 5, nil, catalog.DiscoverQuery{}, 5)
	if err != nil {
		t.Fatalf("empty result must not be an error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %d movies, want 0", len(got))
	}
}

func TestAggregateAbortsOnPageFailure(t *testing.T) {
	cat := &pagedDiscoverer{
		pages: map[int][]catalog.Movie{
			1: movies(1, 2),
			3: movies(3, 4),
		},
		failPage: 2,
	}

	_, err := Aggregate(context.Background(), cat, "key", 5, nil, catalog.DiscoverQuery{}, 5)
	if !errors.Is(err, errPageBoom) {
		t.Fatalf("expected page failure to abort the aggregation, got %v", err)
	}
	if cat.calls != 2 {
		t.Fatalf("made %d page requests, want 2 (no pages after the failure)", cat.calls)
	}
}

func TestAggregateSkipsZeroIDs(t *testing.T) {
	cat := &pagedDiscoverer{pages: map[int][]catalog.Movie{
		1: {{ID: 0, Title: "broken"}, {ID: 1, Title: "ok"}},
	}}

	got, err := Aggregate(context.Background(), cat, "key", 5, nil, catalog.DiscoverQuery{}, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("got %+v, want single movie with id 1", got)
	}
}
