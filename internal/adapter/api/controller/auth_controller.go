package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/moneywise/internal/adapter/api/dto"
	"github.com/hugohenrick/moneywise/pkg/auth"
	"github.com/hugohenrick/moneywise/pkg/tenant"
)

// AuthController gerencia as requisições de sessão
type AuthController struct {
	jwtService *auth.JWTService
}

// NewAuthController cria uma nova instância de AuthController. jwtService pode ser nil
// quando a empresa é identificada pelo cabeçalho tenant-id.
func NewAuthController(jwtService *auth.JWTService) *AuthController {
	return &AuthController{jwtService: jwtService}
}

// RefreshToken renova um token JWT
// @Summary Renova um token JWT
// @Description Renova um token de sessão, mesmo que já expirado, mantendo empresa e usuário
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body dto.RefreshTokenRequest true "Token a ser renovado"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 501 {object} dto.ErrorResponse
// @Router /auth/refresh [post]
func (c *AuthController) RefreshToken(ctx *gin.Context) {
	if c.jwtService == nil {
		ctx.JSON(http.StatusNotImplemented, dto.NewErrorResponse(http.StatusNotImplemented, "Autenticação por token desabilitada", auth.ErrMissingJWTKey.Error()))
		return
	}

	var request dto.RefreshTokenRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	newToken, err := c.jwtService.RefreshToken(request.Token)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidToken) || errors.Is(err, auth.ErrInvalidClaims) {
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Token inválido", err.Error()))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao renovar token", ""))
		return
	}

	claims, err := c.jwtService.ValidateToken(newToken)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao validar novo token", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken: newToken,
		TenantID:    claims.TenantID,
		UserID:      claims.UserID,
		ExpiresAt:   claims.ExpiresAt.Time,
	})
}

// Session retorna a empresa e o usuário da requisição
// @Summary Sessão atual
// @Description Retorna a empresa e o usuário identificados pelo token ou pelos cabeçalhos
// @Tags auth
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param tenant-id header string false "Empresa (quando não há token)"
// @Param user-id header string false "Usuário"
// @Success 200 {object} dto.SessionResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/session [get]
func (c *AuthController) Session(ctx *gin.Context) {
	tenantID := tenant.GetTenantID(ctx)
	ctx.JSON(http.StatusOK, dto.SessionResponse{
		TenantID:      tenantID,
		UserID:        tenant.GetUserID(ctx),
		Authenticated: tenantID != "",
	})
}
