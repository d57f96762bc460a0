package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sunidhi090894/kidsvids-backend/internal/services"
	"github.com/sunidhi090894/kidsvids-backend/internal/utils"
)

// FeedbackRequest is the payload for POST /videos/{id}/feedback. Value is a
// thumbs-up (1) or thumbs-down (-1).
type FeedbackRequest struct {
	Value int `json:"value" binding:"required,oneof=-1 1" example:"1"`
}

// LeaveFeedback godoc
// @ID          leaveFeedback
// @Summary     Rate a video
// @Description Records a single thumbs-up or thumbs-down per user per video. Repeat submissions for the same pair are rejected with 409.
// @Tags        Feedback
// @Accept      json
// @Produce     json
//
// @Param       id         path    int                      true  "Video ID (1-based dataset order)"
// @Param       X-User-ID  header  string                   false "Caller identity; defaults to demo-user"
// @Param       payload    body    handlers.FeedbackRequest true  "Feedback value"
//
// @Success     204  {string} string "No Content"
// @Failure     400  {object} handlers.ErrorResponse "Invalid ID or value"
// @Failure     404  {object} handlers.ErrorResponse "Video not found or no dataset loaded"
// @Failure     409  {object} handlers.ErrorResponse "Feedback already recorded"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /videos/{id}/feedback [post]
func (h *Handlers) LeaveFeedback(c *gin.Context) {
	id := utils.AtoiDefault(c.Param("id"), 0)
	if id < 1 {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "video id must be a positive integer")
		return
	}

	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "value must be -1 or 1")
		return
	}

	err := h.fbSvc.Leave(c.Request.Context(), userID(c), id, req.Value)
	switch {
	case err == nil:
		noContent(c)
	case errors.Is(err, services.ErrInvalidFeedback):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "value must be -1 or 1")
	case errors.Is(err, services.ErrVideoNotFound), errors.Is(err, services.ErrNoDataset):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "video not found")
	case errors.Is(err, services.ErrDuplicateFeedback):
		fail(c, http.StatusConflict, ErrCodeConflict, "feedback already recorded for this video")
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "failed to record feedback")
	}
}
