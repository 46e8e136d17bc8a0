package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/sofili-studio/studio-backend/internal/auth"
)

func probeRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/probe", auth.RequireUser(), func(c *gin.Context) {
		c.String(http.StatusOK, auth.UserID(c))
	})
	return r
}

func TestCallerIDPrecedence(t *testing.T) {
	r := probeRouter()

	tests := []struct {
		name       string
		headers    map[string]string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "direct header wins",
			headers:    map[string]string{"X-User-ID": "alice", "Authorization": "Bearer token-bob"},
			wantStatus: http.StatusOK,
			wantBody:   "alice",
		},
		{
			name:       "direct header trimmed",
			headers:    map[string]string{"X-User-ID": "  alice  "},
			wantStatus: http.StatusOK,
			wantBody:   "alice",
		},
		{
			name:       "blank direct header falls through to bearer",
			headers:    map[string]string{"X-User-ID": "   ", "Authorization": "Bearer token-bob"},
			wantStatus: http.StatusOK,
			wantBody:   "token-bob",
		},
		{
			name:       "bearer token trimmed",
			headers:    map[string]string{"Authorization": "Bearer  spaced-token "},
			wantStatus: http.StatusOK,
			wantBody:   "spaced-token",
		},
		{
			name:       "non-bearer authorization is ignored",
			headers:    map[string]string{"Authorization": "Token abc"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "no identity",
			headers:    nil,
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/probe", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantBody, rr.Body.String())
			}
		})
	}
}
