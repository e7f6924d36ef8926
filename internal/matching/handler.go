package matching

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"recruiting-backend/internal/candidates"
	"recruiting-backend/internal/jobpostings"
	"recruiting-backend/internal/queue"
	"recruiting-backend/internal/shared/server/middleware"
	"recruiting-backend/internal/shared/server/respond"
)

// Handler exposes the matching operations over HTTP.
type Handler struct {
	Svc   *Service
	Queue queue.Client
}

// NewHandler constructs a Handler. The queue client is optional; without one,
// async batch requests are rejected.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes mounts the matching routes on the given group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/matching")
	group.POST("/score", h.score)
	group.POST("/batch", h.batch)
	group.GET("/jobs/:jobPostingId/distribution", h.distribution)
	group.GET("/recommendations", h.recommendations)
}

type scoreRequest struct {
	CandidateID  string `json:"candidateId" binding:"required"`
	JobPostingID string `json:"jobPostingId" binding:"required"`
}

func (h *Handler) score(c *gin.Context) {
	var req scoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "candidateId and jobPostingId are required", nil)
		return
	}
	c.Set("candidateId", req.CandidateID)
	c.Set("jobPostingId", req.JobPostingID)

	result, err := h.Svc.CalculateMatch(c.Request.Context(), req.CandidateID, req.JobPostingID)
	if err != nil {
		h.respondError(c, err, "failed to calculate match")
		return
	}
	respond.JSON(c, http.StatusOK, result)
}

type batchRequest struct {
	JobPostingID string  `json:"jobPostingId" binding:"required"`
	MinScore     float64 `json:"minScore"`
	Async        bool    `json:"async"`
}

func (h *Handler) batch(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "jobPostingId is required", nil)
		return
	}
	if req.MinScore < 0 || req.MinScore > 100 {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "minScore must be between 0 and 100", nil)
		return
	}
	c.Set("jobPostingId", req.JobPostingID)

	if req.Async {
		h.enqueueBatch(c, req)
		return
	}

	result, err := h.Svc.BatchMatch(c.Request.Context(), req.JobPostingID, req.MinScore)
	if err != nil && result.TotalProcessed == 0 {
		h.respondError(c, err, "failed to run batch match")
		return
	}
	respond.JSON(c, http.StatusOK, result)
}

func (h *Handler) enqueueBatch(c *gin.Context, req batchRequest) {
	if h.Queue == nil {
		respond.Error(c, http.StatusServiceUnavailable, ErrorCodeInternal, "batch queue not configured", nil)
		return
	}
	msg := queue.Message{
		JobPostingID: req.JobPostingID,
		MinScore:     req.MinScore,
		RequestID:    middleware.RequestIDFromContext(c),
		EnqueuedAt:   time.Now().UTC().Format(time.RFC3339),
		Version:      1,
	}
	if err := h.Queue.Send(c.Request.Context(), msg); err != nil {
		respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, "failed to enqueue batch match", nil)
		return
	}
	respond.JSON(c, http.StatusAccepted, gin.H{"queued": true, "requestId": msg.RequestID})
}

func (h *Handler) distribution(c *gin.Context) {
	jobPostingID := c.Param("jobPostingId")
	c.Set("jobPostingId", jobPostingID)

	dist, err := h.Svc.MatchDistribution(c.Request.Context(), jobPostingID)
	if err != nil {
		h.respondError(c, err, "failed to load match distribution")
		return
	}
	respond.JSON(c, http.StatusOK, dist)
}

func (h *Handler) recommendations(c *gin.Context) {
	candidateID := c.Query("candidateId")
	jobPostingID := c.Query("jobPostingId")
	if candidateID == "" || jobPostingID == "" {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "candidateId and jobPostingId are required", nil)
		return
	}
	c.Set("candidateId", candidateID)
	c.Set("jobPostingId", jobPostingID)

	recs, err := h.Svc.Recommendations(c.Request.Context(), candidateID, jobPostingID)
	if err != nil {
		h.respondError(c, err, "failed to generate recommendations")
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"recommendations": recs})
}

func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, candidates.ErrNotFound):
		respond.Error(c, http.StatusNotFound, ErrorCodeNotFound, "candidate not found", nil)
	case errors.Is(err, jobpostings.ErrNotFound):
		respond.Error(c, http.StatusNotFound, ErrorCodeNotFound, "job posting not found", nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, ErrorCodeNotFound, "match result not found", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, fallback, nil)
	}
}
