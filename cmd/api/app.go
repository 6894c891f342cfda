package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/moneywise/docs"
	"github.com/hugohenrick/moneywise/internal/adapter/api/controller"
	"github.com/hugohenrick/moneywise/internal/adapter/api/route"
	"github.com/hugohenrick/moneywise/internal/app"
	"github.com/hugohenrick/moneywise/internal/config"
	"github.com/hugohenrick/moneywise/pkg/logger"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const basePath = "/api/v1"

// App representa a aplicação e suas dependências
type App struct {
	config    *config.Config
	router    *gin.Engine
	container *app.Container
}

// NewApp cria uma nova instância do aplicativo
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logger.NewLogger(cfg.Env)

	container, err := app.NewContainer(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(cors.New(corsConfig(cfg)))

	a := &App{config: cfg, router: router, container: container}
	a.SetupRoutes()

	log.Info("Aplicação configurada",
		"storage_driver", cfg.StorageDriver,
		"intent_source", container.Source.Name(),
		"speech_to_text", container.Assistant.SpeechAvailable(),
		"jwt", container.JWT != nil)

	return a, nil
}

// SetupRoutes configura as rotas da aplicação
func (a *App) SetupRoutes() {
	docs.SwaggerInfo.BasePath = basePath
	a.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	assistantController := controller.NewAssistantController(
		a.container.Assistant,
		a.container.Source.Name(),
		a.config.StorageDriver,
		a.container.Logger,
	)

	collectionController := controller.NewCollectionController(
		a.container.Customers,
		a.container.Products,
		a.container.Credits,
		a.container.Transactions,
		a.container.Logger,
	)

	api := a.router.Group(basePath)
	route.ConfigureAssistantRoutes(api, assistantController, a.container.TokenValidator())
	route.ConfigureCollectionRoutes(api, collectionController, a.container.TokenValidator())
	route.ConfigureAuthRoutes(api, controller.NewAuthController(a.container.JWT), a.container.TokenValidator())
}

// Server cria o servidor HTTP da aplicação
func (a *App) Server() *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", a.config.Port),
		Handler:      a.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// GetRouter retorna o router da aplicação
func (a *App) GetRouter() *gin.Engine {
	return a.router
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	a.container.Close()
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", "tenant-id", "user-id")

	origins := cfg.AllowedOrigins()
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
	}
	return corsCfg
}
