package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"movierec-backend/internal/recommend"
	"movierec-backend/internal/session"
	"movierec-backend/internal/shared/config"
	"movierec-backend/internal/shared/server/middleware"
	"movierec-backend/internal/shared/server/respond"
)

// RouterDeps collects the handlers the router needs.
type RouterDeps struct {
	Config           config.Config
	SessionHandler   *session.Handler
	RecommendHandler *recommend.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	deps.SessionHandler.RegisterRoutes(api)
	deps.RecommendHandler.RegisterRoutes(api)

	return r
}

// Addr returns the listen address for the given port.
func Addr(port string) string {
	return ":" + port
}
