package http

import "github.com/gin-gonic/gin"

// RegisterPublic attaches the submission route.
func (h *Handler) RegisterPublic(rg *gin.RouterGroup) {
	rg.POST("", h.create)
}

// RegisterAdmin attaches the dashboard routes. The caller applies the
// session middleware to the group.
func (h *Handler) RegisterAdmin(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.GET("/stats", h.stats)
	rg.GET("/events", h.streamEvents)
	rg.PATCH("/:id/status", h.setStatus)
	rg.DELETE("/:id", h.delete)
}
