package recommend

import (
	"context"

	"movierec-backend/internal/catalog"
)

// Discoverer is the slice of the catalog client that aggregation needs.
type Discoverer interface {
	Discover(ctx context.Context, apiKey string, q catalog.DiscoverQuery) ([]catalog.Movie, error)
}

// Aggregate collects up to target unique movies across discover pages
// 1..maxPages, preserving catalog order. Items with a zero id, ids already
// admitted in this pass, and ids in excluded are skipped. It stops as soon as
// target is reached. Fewer than target, including zero, is a normal result;
// any page failure fails the whole call.
func Aggregate(ctx context.Context, cat Discoverer, apiKey string, target int, excluded map[int]struct{}, base catalog.DiscoverQuery, maxPages int) ([]catalog.Movie, error) {
	if target <= 0 || maxPages <= 0 {
		return nil, nil
	}

	admitted := make([]catalog.Movie, 0, target)
	seen := make(map[int]struct{}, target)

	for page := 1; page <= maxPages; page++ {
		q := base
		q.Page = page
		movies, err := cat.Discover(ctx, apiKey, q)
		if err != nil {
			return nil, err
		}
		for _, m := range movies {
			if m.ID == 0 {
				continue
			}
			if _, dup := seen[m.ID]; dup {
				continue
			}
			if _, watched := excluded[m.ID]; watched {
				continue
			}
			seen[m.ID] = struct{}{}
			admitted = append(admitted, m)
			if len(admitted) == target {
				return admitted, nil
			}
		}
	}
	return admitted, nil
}
