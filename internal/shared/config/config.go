package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration. TMDB and OpenAI API keys are
// deliberately absent: they are supplied per session over the API and are
// never read from the environment or written anywhere.
type Config struct {
	Port            string
	Env             string
	CORSAllowOrigin []string

	TMDBLanguage string
	TMDBRegion   string
	TMDBSortBy   string
	MinVoteCount int
	MinRating    float64
	ResultCount  int
	MaxPages     int

	LLMProvider string
	LLMModel    string
	LLMTimeout  time.Duration

	CacheEnabled     bool
	DiscoverCacheTTL time.Duration
	DetailCacheTTL   time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	_ = godotenv.Load(".env", "cmd/.env")

	return Config{
		Port:            getEnv("PORT", "8080"),
		Env:             normalizeEnv(getEnv("ENV", "dev")),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),

		TMDBLanguage: getEnv("TMDB_LANGUAGE", "ko-KR"),
		TMDBRegion:   getEnv("TMDB_REGION", "KR"),
		TMDBSortBy:   getEnv("TMDB_SORT_BY", "popularity.desc"),
		MinVoteCount: getEnvInt("TMDB_MIN_VOTE_COUNT", 100),
		MinRating:    getEnvFloat("TMDB_MIN_RATING", 0),
		ResultCount:  getEnvInt("RESULT_COUNT", 5),
		MaxPages:     getEnvInt("TMDB_MAX_PAGES", 5),

		LLMProvider: getEnv("LLM_PROVIDER", "openai"),
		LLMModel:    getEnv("LLM_MODEL", "gpt-4o-mini"),
		LLMTimeout:  time.Duration(getEnvInt("LLM_TIMEOUT_SECONDS", 60)) * time.Second,

		CacheEnabled:     getEnvBool("CACHE_ENABLED", true),
		DiscoverCacheTTL: time.Duration(getEnvInt("DISCOVER_CACHE_TTL_SECONDS", 300)) * time.Second,
		DetailCacheTTL:   time.Duration(getEnvInt("DETAIL_CACHE_TTL_SECONDS", 1800)) * time.Second,
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return parsed
}

func getEnvFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return parsed
}

func getEnvBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return parsed
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}
