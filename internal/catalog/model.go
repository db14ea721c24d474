package catalog

import (
	"strings"
	"unicode/utf8"
)

const posterBase = "https://image.tmdb.org/t/p/w500"

// Movie is one TMDB catalog item as returned by the discover endpoint.
type Movie struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Rating      float64 `json:"vote_average"`
	VoteCount   int     `json:"vote_count"`
	Overview    string  `json:"overview"`
	PosterPath  string  `json:"poster_path"`
	ReleaseDate string  `json:"release_date"`
}

// PosterURL returns the full poster image URL, or "" when no poster exists.
func (m Movie) PosterURL() string {
	if m.PosterPath == "" {
		return ""
	}
	return posterBase + m.PosterPath
}

// ShortOverview returns the overview truncated to 280 runes with an ellipsis.
func (m Movie) ShortOverview() string {
	return TruncateOverview(m.Overview, 280)
}

// TruncateOverview trims the text and cuts it to at most limit runes,
// appending an ellipsis when anything was dropped.
func TruncateOverview(text string, limit int) string {
	trimmed := strings.TrimSpace(text)
	if utf8.RuneCountInString(trimmed) <= limit {
		return trimmed
	}
	runes := []rune(trimmed)
	return strings.TrimRight(string(runes[:limit]), " ") + "…"
}

// GenreRef is a genre id/name pair on a detail response.
type GenreRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// MovieDetail is the richer per-title metadata from the detail endpoint.
type MovieDetail struct {
	Movie
	Runtime int        `json:"runtime"`
	Tagline string     `json:"tagline"`
	Genres  []GenreRef `json:"genres"`
}

// CastMember is one credited actor.
type CastMember struct {
	Name      string `json:"name"`
	Character string `json:"character"`
	Order     int    `json:"order"`
}

// Video is one trailer/teaser reference.
type Video struct {
	Key      string `json:"key"`
	Site     string `json:"site"`
	Type     string `json:"type"`
	Official bool   `json:"official"`
}

// TrailerURL returns a watchable URL for YouTube-hosted videos.
func (v Video) TrailerURL() string {
	if strings.EqualFold(v.Site, "YouTube") && v.Key != "" {
		return "https://www.youtube.com/watch?v=" + v.Key
	}
	return ""
}

// FirstTrailer picks the first official YouTube trailer, falling back to any
// YouTube trailer, then to nothing.
func FirstTrailer(videos []Video) (Video, bool) {
	var fallback Video
	found := false
	for _, v := range videos {
		if !strings.EqualFold(v.Site, "YouTube") || !strings.EqualFold(v.Type, "Trailer") {
			continue
		}
		if v.Official {
			return v, true
		}
		if !found {
			fallback = v
			found = true
		}
	}
	return fallback, found
}

// Provider is one watch-provider entry.
type Provider struct {
	Name string `json:"provider_name"`
}

// ProviderInfo groups a region's providers by offer type.
type ProviderInfo struct {
	Flatrate []Provider `json:"flatrate"`
	Rent     []Provider `json:"rent"`
	Buy      []Provider `json:"buy"`
}
