// Package app monta as dependências do assistente a partir da configuração.
package app

import (
	"context"
	"fmt"

	"github.com/hugohenrick/moneywise/internal/adapter/repository"
	"github.com/hugohenrick/moneywise/internal/config"
	"github.com/hugohenrick/moneywise/internal/domain/credit"
	"github.com/hugohenrick/moneywise/internal/domain/customer"
	"github.com/hugohenrick/moneywise/internal/domain/product"
	"github.com/hugohenrick/moneywise/internal/domain/transaction"
	"github.com/hugohenrick/moneywise/internal/infrastructure/database"
	"github.com/hugohenrick/moneywise/pkg/assistant"
	"github.com/hugohenrick/moneywise/pkg/auth"
	"github.com/hugohenrick/moneywise/pkg/logger"
	"github.com/hugohenrick/moneywise/pkg/mcp"
	"github.com/hugohenrick/moneywise/pkg/mcp/intent"
	"github.com/hugohenrick/moneywise/pkg/storage"
	"github.com/hugohenrick/moneywise/pkg/tenant"
)

// newIntentSource é substituído nos testes
var newIntentSource = mcp.NewIntentSource

// Container reúne os componentes do assistente
type Container struct {
	Config *config.Config
	Logger logger.Logger
	Store  storage.KeyValue
	Source mcp.IntentSource

	Customers    customer.Repository
	Products     product.Repository
	Credits      credit.Repository
	Transactions transaction.Repository

	Router    *intent.Router
	Assistant *assistant.Assistant
	JWT       *auth.JWTService

	closers []func()
}

// NewContainer cria uma nova instância de Container
func NewContainer(ctx context.Context, cfg *config.Config, log logger.Logger) (*Container, error) {
	c := &Container{Config: cfg, Logger: log}

	store, err := c.newStore(ctx)
	if err != nil {
		c.Close()
		return nil, err
	}
	c.Store = store

	notifier := storage.NewLogNotifier(log)
	c.Customers = repository.NewCustomerRepository(store, notifier, log)
	c.Products = repository.NewProductRepository(store, notifier, log)
	c.Credits = repository.NewCreditRepository(store, notifier, log)
	c.Transactions = repository.NewTransactionRepository(store, notifier, log)
	c.Router = intent.NewRouter(c.Customers, c.Products, c.Credits, c.Transactions, log)

	source, err := newIntentSource(ctx, mcp.SourceConfig{
		Provider:        cfg.LLMProvider,
		GeminiAPIKey:    cfg.GeminiAPIKey,
		GeminiModel:     cfg.GeminiModel,
		AnthropicAPIKey: cfg.AnthropicAPIKey,
		AnthropicModel:  cfg.AnthropicModel,
	}, log)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("erro ao criar interpretador de comandos: %w", err)
	}
	c.Source = source
	if closer, ok := source.(mcp.Closer); ok {
		c.closers = append(c.closers, func() { _ = closer.Close() })
	}

	var opts []assistant.Option
	if cfg.SpeechToText {
		transcriber, err := mcp.NewGeminiTranscriber(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.SpeechLocale, log)
		if err != nil {
			c.Close()
			return nil, fmt.Errorf("erro ao criar reconhecimento de voz: %w", err)
		}
		c.closers = append(c.closers, func() { _ = transcriber.Close() })
		opts = append(opts, assistant.WithTranscriber(transcriber))
	}

	c.Assistant = assistant.NewAssistant(source, c.Router, repository.NewChatRepository(store, notifier, log), log, opts...)
	c.closers = append(c.closers, func() { _ = c.Assistant.Close() })

	if cfg.JWTSecret != "" {
		c.JWT, err = auth.NewJWTService(cfg.JWTSecret, cfg.JWTExpiration())
		if err != nil {
			c.Close()
			return nil, err
		}
	}

	return c, nil
}

// TokenValidator retorna o validador de tokens ou nil quando JWT_SECRET não está configurado
func (c *Container) TokenValidator() tenant.TokenValidator {
	if c.JWT == nil {
		return nil
	}
	return c.JWT
}

func (c *Container) newStore(ctx context.Context) (storage.KeyValue, error) {
	switch c.Config.StorageDriver {
	case config.StoragePostgres:
		pool, err := database.NewPostgresDB(ctx, database.NewPostgresConfig(c.Config.DatabaseURL, c.Config.DBMaxConnections))
		if err != nil {
			return nil, err
		}
		c.closers = append(c.closers, pool.Close)
		c.Logger.Info("Armazenamento PostgreSQL conectado")
		return storage.NewPostgresKV(pool), nil

	case config.StorageRedis:
		client, err := database.NewRedisClient(ctx, c.Config.RedisURL)
		if err != nil {
			return nil, err
		}
		c.closers = append(c.closers, func() { _ = client.Close() })
		c.Logger.Info("Armazenamento Redis conectado")
		return storage.NewRedisKV(client, c.Config.RedisKeyPrefix), nil

	default:
		c.Logger.Warn("Usando armazenamento em memória: os dados serão perdidos ao reiniciar")
		return storage.NewMemoryKV(c.Config.MemoryQuotaBytes), nil
	}
}

// Close libera as conexões na ordem inversa da criação
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	c.closers = nil
}
