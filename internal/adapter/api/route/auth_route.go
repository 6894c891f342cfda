package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/moneywise/internal/adapter/api/controller"
	"github.com/hugohenrick/moneywise/pkg/tenant"
)

// ConfigureAuthRoutes configura as rotas de sessão
func ConfigureAuthRoutes(router *gin.RouterGroup, authController *controller.AuthController, validator tenant.TokenValidator) {
	authRouter := router.Group("/auth")
	{
		// Renovação usa o próprio token no corpo, sem passar pelo middleware
		authRouter.POST("/refresh", authController.RefreshToken)

		authRouter.GET("/session", tenant.Middleware(validator), authController.Session)
	}
}
