package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ataa-grants/grants-backend/internal/aireview"
)

// Reviewer is the generation surface the handler needs. Satisfied by
// aireview.Client.
type Reviewer interface {
	Review(ctx context.Context, req aireview.Request) (string, error)
}

// Handler serves the on-demand AI review endpoint used by the
// submission form while the applicant is still editing.
type Handler struct {
	reviewer Reviewer
	log      *zap.Logger
}

// NewHandler creates the review handler. A nil reviewer means the
// feature is not configured; requests then get a 503.
func NewHandler(reviewer Reviewer, log *zap.Logger) *Handler {
	return &Handler{reviewer: reviewer, log: log}
}

func (h *Handler) review(c *gin.Context) {
	var req aireview.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	// Title and description are checked before any remote call.
	if strings.TrimSpace(req.ProjectTitle) == "" || strings.TrimSpace(req.ProjectDesc) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "project title and description are required"})
		return
	}

	if h.reviewer == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": "ai review is not configured"})
		return
	}

	review, err := h.reviewer.Review(c.Request.Context(), req)
	if err != nil {
		// Logged only; the form treats a missing review as absent and
		// submission is never blocked on it.
		h.log.Warn("ai review failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": "review generation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "review": review})
}

// Register attaches the review route to the public API group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/ai-review", h.review)
}
