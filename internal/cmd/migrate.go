package cmd

import (
	"fmt"

	"github.com/hugohenrick/moneywise/internal/config"
	"github.com/hugohenrick/moneywise/internal/infrastructure/database"
	"github.com/spf13/cobra"
)

var migrateDown bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Aplica as migrações do banco PostgreSQL",
	Long:  `Cria (ou, com --down, remove) a tabela kv_store usada pelo driver postgres.`,
	RunE:  runMigrate,
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateDown, "down", false, "desfaz todas as migrações")
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if migrateDown {
		if err := database.RollbackMigrations(cfg.DatabaseURL); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Migrações desfeitas com sucesso.")
		return nil
	}

	version, err := database.RunMigrations(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Migrações aplicadas com sucesso (versão %d).\n", version)
	return nil
}
