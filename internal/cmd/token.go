package cmd

import (
	"fmt"

	"github.com/hugohenrick/moneywise/internal/config"
	"github.com/hugohenrick/moneywise/pkg/auth"
	"github.com/spf13/cobra"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Gera um token de sessão para a empresa e o usuário informados",
	Long: `Gera um token JWT assinado com JWT_SECRET. O token identifica a empresa
e o usuário nas chamadas à API (cabeçalho Authorization: Bearer <token>).`,
	RunE: runToken,
}

func init() {
	rootCmd.AddCommand(tokenCmd)
}

func runToken(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	jwtService, err := auth.NewJWTService(cfg.JWTSecret, cfg.JWTExpiration())
	if err != nil {
		return err
	}

	token, err := jwtService.GenerateToken(userID, tenantID)
	if err != nil {
		return fmt.Errorf("erro ao gerar token: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
