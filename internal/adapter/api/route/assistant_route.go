package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/moneywise/internal/adapter/api/controller"
	"github.com/hugohenrick/moneywise/pkg/tenant"
)

// ConfigureAssistantRoutes configura as rotas do assistente
func ConfigureAssistantRoutes(router *gin.RouterGroup, assistantController *controller.AssistantController, validator tenant.TokenValidator) {
	router.GET("/health", assistantController.Health)

	// Sem empresa as mensagens ainda são aceitas; o assistente responde pedindo login
	assistantGroup := router.Group("/assistant")
	assistantGroup.Use(tenant.Middleware(validator))
	{
		assistantGroup.POST("/messages", assistantController.SendMessage)
		assistantGroup.POST("/voice", assistantController.SendVoice)
		assistantGroup.POST("/commands", assistantController.ExecuteCommand)

		history := assistantGroup.Group("/history")
		history.Use(tenant.RequireTenant())
		{
			history.GET("", assistantController.GetHistory)
			history.DELETE("", assistantController.DeleteHistory)
		}
	}
}
