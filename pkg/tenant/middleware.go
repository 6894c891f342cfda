package tenant

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/moneywise/internal/adapter/api/dto"
	"github.com/hugohenrick/moneywise/pkg/auth"
)

// TokenValidator define a interface para validação do token de sessão
type TokenValidator interface {
	ValidateToken(token string) (*auth.JWTClaims, error)
}

// Middleware identifica a empresa e o usuário da requisição.
// Com validator, a empresa vem do token Bearer; sem ele, do cabeçalho tenant-id.
// A ausência da empresa não é rejeitada aqui: use RequireTenant nas rotas que a exigem.
func Middleware(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tenantID, userID string

		if validator != nil {
			token, err := bearerToken(c.GetHeader("Authorization"))
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
					http.StatusUnauthorized,
					"Token inválido",
					err.Error(),
				))
				return
			}

			if token != "" {
				claims, err := validator.ValidateToken(token)
				if err != nil {
					c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
						http.StatusUnauthorized,
						"Token inválido",
						err.Error(),
					))
					return
				}
				tenantID = claims.TenantID
				userID = claims.UserID
			}
		} else {
			tenantID = strings.TrimSpace(c.GetHeader("tenant-id"))
		}

		if userID == "" {
			userID = strings.TrimSpace(c.GetHeader("user-id"))
		}
		if userID == "" {
			userID = DefaultUserID
		}

		c.Set(string(tenantIDKey), tenantID)
		c.Set(string(userIDKey), userID)

		ctx := SetTenantIDContext(c.Request.Context(), tenantID)
		c.Request = c.Request.WithContext(SetUserIDContext(ctx, userID))

		c.Next()
	}
}

// RequireTenant rejeita com 400 as requisições sem empresa identificada
func RequireTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetTenantID(c) == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(
				http.StatusBadRequest,
				"Tenant ID não fornecido",
				ErrTenantNotSpecified.Error(),
			))
			return
		}
		c.Next()
	}
}

// bearerToken extrai o token do cabeçalho. Cabeçalho vazio retorna "" sem erro.
func bearerToken(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", nil
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", ErrInvalidAuthorization
	}
	return strings.TrimSpace(parts[1]), nil
}
