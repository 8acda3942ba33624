package content

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler serves the landing page content.
type Handler struct {
	landing Landing
}

// NewHandler creates the content handler. The payload is fixed at
// startup.
func NewHandler() *Handler {
	return &Handler{landing: Default()}
}

func (h *Handler) get(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "content": h.landing})
}

// Register attaches the content route to the public API group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/content", h.get)
}
