package tenant

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/moneywise/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(validator TokenValidator) *gin.Engine {
	r := gin.New()
	r.Use(Middleware(validator))
	identity := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"tenant_id":     GetTenantID(c),
			"user_id":       GetUserID(c),
			"ctx_tenant_id": GetTenantIDFromContext(c.Request.Context()),
		})
	}
	r.GET("/open", identity)
	r.GET("/restricted", RequireTenant(), identity)
	return r
}

func TestMiddleware_Headers(t *testing.T) {
	r := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("tenant-id", "Padaria")
	req.Header.Set("user-id", "ana")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"tenant_id":"Padaria","user_id":"ana","ctx_tenant_id":"Padaria"}`, w.Body.String())
}

func TestMiddleware_MissingTenant(t *testing.T) {
	r := newTestRouter(nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/open", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"tenant_id":"","user_id":"default","ctx_tenant_id":""}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/restricted", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMiddleware_BearerToken(t *testing.T) {
	jwtService, err := auth.NewJWTService("segredo", time.Hour)
	require.NoError(t, err)
	r := newTestRouter(jwtService)

	token, err := jwtService.GenerateToken("ana", "Padaria")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"token válido", "Bearer " + token, http.StatusOK, `{"tenant_id":"Padaria","user_id":"ana","ctx_tenant_id":"Padaria"}`},
		{"sem token", "", http.StatusOK, `{"tenant_id":"","user_id":"default","ctx_tenant_id":""}`},
		{"token inválido", "Bearer abc", http.StatusUnauthorized, ""},
		{"esquema errado", "Basic abc", http.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/open", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			// com token configurado o cabeçalho tenant-id é ignorado
			req.Header.Set("tenant-id", "Outra")

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.body != "" {
				assert.JSONEq(t, tt.body, w.Body.String())
			}
		})
	}
}
