package recommend

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"movierec-backend/internal/catalog"
	"movierec-backend/internal/mood"
	"movierec-backend/internal/quiz"
	"movierec-backend/internal/session"
	"movierec-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the recommendation service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches recommendation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/quiz/questions", h.listQuestions)
	rg.GET("/mood/labels", h.listMoodLabels)
	rg.POST("/sessions/:id/recommendations/quiz", h.quizRecommend)
	rg.POST("/sessions/:id/recommendations/mood", h.moodRecommend)
	rg.GET("/sessions/:id/movies/:movieID", h.titleDetail)
}

func (h *Handler) listQuestions(c *gin.Context) {
	respond.OK(c, gin.H{"questions": quiz.Questions()})
}

func (h *Handler) listMoodLabels(c *gin.Context) {
	respond.OK(c, gin.H{
		"labels":   mood.Labels(),
		"override": mood.OverrideAuto,
	})
}

type quizRequest struct {
	Answers      []string `json:"answers" binding:"required"`
	Situation    string   `json:"situation"`
	PickFinalist bool     `json:"pickFinalist"`
	Filters      Filters  `json:"filters"`
}

func (h *Handler) quizRecommend(c *gin.Context) {
	var req quizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "invalid request body", nil)
		return
	}
	if len(req.Answers) != 5 {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "exactly five answers are required", nil)
		return
	}

	var answers quiz.Answers
	copy(answers[:], req.Answers)

	result, err := h.Svc.QuizRecommend(c.Request.Context(), c.Param("id"), QuizInput{
		Answers:      answers,
		Situation:    req.Situation,
		PickFinalist: req.PickFinalist,
		Filters:      req.Filters,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.Set("genreLabel", result.Label)
	respond.OK(c, result)
}

type moodRequest struct {
	Text         string  `json:"text"`
	Override     string  `json:"override"`
	PickFinalist bool    `json:"pickFinalist"`
	Filters      Filters `json:"filters"`
}

func (h *Handler) moodRecommend(c *gin.Context) {
	var req moodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "invalid request body", nil)
		return
	}

	result, err := h.Svc.MoodRecommend(c.Request.Context(), c.Param("id"), MoodInput{
		Text:         req.Text,
		Override:     req.Override,
		PickFinalist: req.PickFinalist,
		Filters:      req.Filters,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.Set("genreLabel", result.Label)
	respond.OK(c, result)
}

func (h *Handler) titleDetail(c *gin.Context) {
	movieID, err := strconv.Atoi(c.Param("movieID"))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "movie id must be an integer", nil)
		return
	}

	opts := DetailOptions{
		IncludeCast:      queryFlag(c, "cast"),
		IncludeTrailer:   queryFlag(c, "trailer"),
		IncludeProviders: queryFlag(c, "providers"),
	}
	view, err := h.Svc.TitleDetail(c.Request.Context(), c.Param("id"), movieID, opts)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respond.OK(c, view)
}

func queryFlag(c *gin.Context, name string) bool {
	v, err := strconv.ParseBool(c.DefaultQuery(name, "false"))
	return err == nil && v
}

func (h *Handler) respondError(c *gin.Context, err error) {
	var statusErr *catalog.StatusError
	switch {
	case errors.Is(err, session.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "session not found", nil)
	case errors.Is(err, ErrMissingTMDBKey):
		respond.Error(c, http.StatusPreconditionFailed, "missing_credential", "TMDB API 키를 먼저 등록해 주세요.", nil)
	case errors.Is(err, ErrMissingOpenAIKey):
		respond.Error(c, http.StatusPreconditionFailed, "missing_credential", "OpenAI API 키를 먼저 등록해 주세요.", nil)
	case errors.Is(err, quiz.ErrInvalidAnswer):
		respond.Error(c, http.StatusBadRequest, "invalid_request", "answers must match the presented options", nil)
	case errors.As(err, &statusErr):
		respond.Error(c, http.StatusBadGateway, "upstream_error", "TMDB 요청에 실패했어요. API 키와 호출 제한을 확인해 주세요.", gin.H{"upstreamStatus": statusErr.Status})
	case errors.Is(err, ErrUpstream):
		respond.Error(c, http.StatusBadGateway, "upstream_error", "외부 API 요청에 실패했어요. 잠시 후 다시 시도해 주세요.", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Unexpected server error", nil)
	}
}
