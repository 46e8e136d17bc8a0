package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sofili-studio/studio-backend/internal/logger"
	"github.com/sofili-studio/studio-backend/internal/users"
)

// RequireAdmin resolves the caller identity, looks the user up and only lets
// admins through. Unknown ids fail closed as Forbidden rather than NotFound.
func RequireAdmin(userSrc users.Reader) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := CallerID(c)
		if uid == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Missing Authorization"})
			return
		}

		u, err := userSrc.GetByID(c.Request.Context(), uid)
		if err != nil {
			if errors.Is(err, users.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Admin access required"})
				return
			}
			logger.Errorf("admin gate: lookup user %s: %v", uid, err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		if !u.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Admin access required"})
			return
		}

		c.Set(CtxUserID, uid)
		c.Next()
	}
}
