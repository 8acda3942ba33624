package http

import (
	"github.com/gin-gonic/gin"

	"github.com/ataa-grants/grants-backend/internal/auth"
)

// Register attaches the session endpoints to the admin group. Login is
// open; logout requires a live session.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/login", h.login)
	rg.POST("/logout", auth.RequireAdmin(h.gate.Sessions()), h.logout)
}
