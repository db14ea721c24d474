package session

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"movierec-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the session store.
type Handler struct {
	Store *Store
}

// NewHandler constructs a Handler.
func NewHandler(store *Store) *Handler {
	return &Handler{Store: store}
}

// RegisterRoutes attaches session routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/sessions", h.createSession)
	rg.PUT("/sessions/:id/keys", h.setKeys)
	rg.GET("/sessions/:id/watched", h.listWatched)
	rg.POST("/sessions/:id/watched", h.addWatched)
	rg.DELETE("/sessions/:id/watched/:movieID", h.removeWatched)
	rg.DELETE("/sessions/:id/watched", h.clearWatched)
}

func (h *Handler) createSession(c *gin.Context) {
	sess := h.Store.Create()
	respond.JSON(c, http.StatusCreated, gin.H{
		"sessionId": sess.ID,
		"createdAt": sess.CreatedAt,
	})
}

type setKeysRequest struct {
	TMDBKey   string `json:"tmdbKey"`
	OpenAIKey string `json:"openaiKey"`
}

func (h *Handler) setKeys(c *gin.Context) {
	var req setKeysRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "invalid request body", nil)
		return
	}
	if err := h.Store.SetKeys(c.Param("id"), req.TMDBKey, req.OpenAIKey); err != nil {
		h.notFound(c, err)
		return
	}
	respond.OK(c, gin.H{"ok": true})
}

type addWatchedRequest struct {
	MovieID int `json:"movieId" binding:"required"`
}

func (h *Handler) addWatched(c *gin.Context) {
	var req addWatchedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "movieId is required", nil)
		return
	}
	if err := h.Store.AddWatched(c.Param("id"), req.MovieID); err != nil {
		h.notFound(c, err)
		return
	}
	h.respondWatched(c)
}

func (h *Handler) removeWatched(c *gin.Context) {
	movieID, err := strconv.Atoi(c.Param("movieID"))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "movie id must be an integer", nil)
		return
	}
	if err := h.Store.RemoveWatched(c.Param("id"), movieID); err != nil {
		h.notFound(c, err)
		return
	}
	h.respondWatched(c)
}

func (h *Handler) clearWatched(c *gin.Context) {
	if err := h.Store.ClearWatched(c.Param("id")); err != nil {
		h.notFound(c, err)
		return
	}
	h.respondWatched(c)
}

func (h *Handler) listWatched(c *gin.Context) {
	h.respondWatched(c)
}

func (h *Handler) respondWatched(c *gin.Context) {
	ids, err := h.Store.WatchedIDs(c.Param("id"))
	if err != nil {
		h.notFound(c, err)
		return
	}
	respond.OK(c, gin.H{"watched": ids})
}

func (h *Handler) notFound(c *gin.Context, err error) {
	if errors.Is(err, ErrNotFound) {
		respond.Error(c, http.StatusNotFound, "not_found", "session not found", nil)
		return
	}
	respond.Error(c, http.StatusInternalServerError, "internal_error", "session operation failed", nil)
}
