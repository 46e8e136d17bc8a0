package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sofili-studio/studio-backend/internal/logger"
)

type loginReq struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// Login resolves or auto-registers a user by phone number. There is no
// password verification: a non-empty password value is recorded as the
// user's display name, which is the documented contract of this endpoint.
func (h *Handler) Login(c *gin.Context) {
	var req loginReq
	if c.Request.ContentLength > 0 {
		// A malformed body just leaves phone empty and fails validation below.
		_ = c.ShouldBindJSON(&req)
	}

	phone := strings.TrimSpace(req.Phone)
	if phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "phone is required"})
		return
	}

	user, err := h.store.Login(c.Request.Context(), phone, strings.TrimSpace(req.Password))
	if err != nil {
		logger.Errorf("login phone=%s: %v", phone, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	if h.cache != nil {
		if err := h.cache.Set(c.Request.Context(), user); err != nil {
			logger.Warningf("login: refresh user cache: %v", err)
		}
	}

	c.JSON(http.StatusOK, user)
}
