package bootstrap

import (
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"movierec-backend/internal/catalog"
	"movierec-backend/internal/llm"
	openai "movierec-backend/internal/llm/openai"
	"movierec-backend/internal/recommend"
	"movierec-backend/internal/server"
	"movierec-backend/internal/session"
	"movierec-backend/internal/shared/config"
)

const castLimit = 5

// App holds shared dependencies.
type App struct {
	Config   config.Config
	Router   *gin.Engine
	Sessions *session.Store
	Service  *recommend.Service
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	var cat recommend.Catalog
	tmdbClient := catalog.NewClient("", 0)
	if cfg.CacheEnabled {
		cat = catalog.NewCachedClient(tmdbClient, cfg.DiscoverCacheTTL, cfg.DetailCacheTTL)
	} else {
		cat = tmdbClient
	}

	oracle := llm.Client(llm.PlaceholderClient{})
	if strings.EqualFold(cfg.LLMProvider, "openai") {
		openaiClient, err := openai.NewClient("", cfg.LLMModel, cfg.LLMTimeout)
		if err != nil {
			return nil, err
		}
		oracle = openaiClient
	} else {
		log.Printf("bootstrap: LLM provider %q not wired; finalist selection disabled", cfg.LLMProvider)
	}

	sessions := session.NewStore()
	svc := &recommend.Service{
		Catalog:  cat,
		Oracle:   oracle,
		Sessions: sessions,
		Defaults: recommend.Defaults{
			Language:     cfg.TMDBLanguage,
			Region:       cfg.TMDBRegion,
			SortBy:       cfg.TMDBSortBy,
			MinVoteCount: cfg.MinVoteCount,
			MinRating:    cfg.MinRating,
			ResultCount:  cfg.ResultCount,
			MaxPages:     cfg.MaxPages,
			CastLimit:    castLimit,
		},
	}

	router := server.NewRouter(server.RouterDeps{
		Config:           cfg,
		SessionHandler:   session.NewHandler(sessions),
		RecommendHandler: recommend.NewHandler(svc),
	})

	return &App{
		Config:   cfg,
		Router:   router,
		Sessions: sessions,
		Service:  svc,
	}, nil
}
