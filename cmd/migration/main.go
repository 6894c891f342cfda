package main

import (
	"flag"
	"log"

	"github.com/hugohenrick/moneywise/internal/config"
	"github.com/hugohenrick/moneywise/internal/infrastructure/database"
	"github.com/joho/godotenv"
)

func main() {
	down := flag.Bool("down", false, "desfaz todas as migrações")
	flag.Parse()

	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Erro ao carregar configuração: %v", err)
	}

	if *down {
		if err := database.RollbackMigrations(cfg.DatabaseURL); err != nil {
			log.Fatalf("Erro ao desfazer migrações: %v", err)
		}
		log.Println("Migrações desfeitas com sucesso!")
		return
	}

	version, err := database.RunMigrations(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Erro ao executar migrações: %v", err)
	}

	log.Printf("Migrações executadas com sucesso! Versão atual: %d", version)
}
