package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ataa-grants/grants-backend/internal/notify"
	"github.com/ataa-grants/grants-backend/internal/proposals/domain"
	"github.com/ataa-grants/grants-backend/internal/proposals/service"
)

// Subscriber is the change-feed surface the SSE handler needs.
// Satisfied by notify.Feed.
type Subscriber interface {
	Subscribe(ctx context.Context) (<-chan notify.Event, error)
}

// Handler serves the proposal endpoints: public submission plus the
// admin dashboard surface.
type Handler struct {
	svc  *service.ProposalService
	feed Subscriber
}

// NewHandler creates the proposals handler.
func NewHandler(svc *service.ProposalService, feed Subscriber) *Handler {
	return &Handler{svc: svc, feed: feed}
}

// create handles a form submission. If the session already obtained an
// AI review, it is attached right after the insert; a failure there
// surfaces to the caller even though the record itself was saved.
func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	p, err := h.svc.Create(c.Request.Context(), req.fields())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	if req.AIReview != "" {
		if err := h.svc.AttachAIReview(c.Request.Context(), p.ID, req.AIReview); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
			return
		}
		review := req.AIReview
		p.AIReview = &review
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "proposal": p})
}

// list returns proposals most recent first, optionally narrowed by the
// dashboard's status filter and search term.
func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	status := c.Query("status")
	term := c.Query("q")
	if status != "" || term != "" {
		items = service.Filter(items, status, term)
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "proposals": items})
}

func (h *Handler) stats(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "stats": service.ComputeStats(items)})
}

// setStatus updates the status and returns the re-read record, so the
// dashboard can re-resolve its selection without a second round trip.
func (h *Handler) setStatus(c *gin.Context) {
	id := c.Param("id")

	var req statusReq
	if err := c.ShouldBindJSON(&req); err != nil || !req.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid status"})
		return
	}

	if err := h.svc.SetStatus(c.Request.Context(), id, req.Status); err != nil {
		if errors.Is(err, domain.ErrProposalNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "proposal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	p, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "proposal": p})
}

func (h *Handler) delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrProposalNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "proposal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
