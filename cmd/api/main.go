package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hugohenrick/moneywise/internal/config"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("Aviso: Arquivo .env não encontrado")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Erro ao carregar configuração")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Criar aplicação
	app, err := NewApp(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Erro ao iniciar aplicação")
	}
	defer app.Close()

	srv := app.Server()

	go func() {
		log.Info().Msgf("MoneyWise API ouvindo em %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Erro no servidor")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Encerrando servidor...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Encerramento forçado")
	}
	log.Info().Msg("Servidor encerrado")
}
