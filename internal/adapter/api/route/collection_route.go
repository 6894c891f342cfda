package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/moneywise/internal/adapter/api/controller"
	"github.com/hugohenrick/moneywise/pkg/tenant"
)

// ConfigureCollectionRoutes configura as rotas de consulta das coleções
func ConfigureCollectionRoutes(router *gin.RouterGroup, collectionController *controller.CollectionController, validator tenant.TokenValidator) {
	collections := router.Group("")
	collections.Use(tenant.Middleware(validator), tenant.RequireTenant())
	{
		collections.GET("/customers", collectionController.ListCustomers)
		collections.GET("/products", collectionController.ListProducts)
		collections.GET("/credit-entries", collectionController.ListCreditEntries)
		collections.GET("/transactions", collectionController.ListTransactions)
		collections.GET("/summary", collectionController.Summary)
	}
}
