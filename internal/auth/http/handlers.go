package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ataa-grants/grants-backend/internal/auth"
)

// Handler serves the admin login and logout endpoints.
type Handler struct {
	gate *auth.Gate
}

// NewHandler creates the auth handler.
func NewHandler(gate *auth.Gate) *Handler {
	return &Handler{gate: gate}
}

type loginReq struct {
	Password string `json:"password"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	token, err := h.gate.Login(c.Request.Context(), req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrWrongPassword) {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "wrong password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "token": token})
}

func (h *Handler) logout(c *gin.Context) {
	token := c.GetString("admin_token")
	if err := h.gate.Logout(c.Request.Context(), token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
