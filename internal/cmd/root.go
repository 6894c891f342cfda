package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/hugohenrick/moneywise/internal/app"
	"github.com/hugohenrick/moneywise/internal/config"
	"github.com/hugohenrick/moneywise/pkg/assistant"
	"github.com/hugohenrick/moneywise/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	tenantID string
	userID   string
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "assistente",
	Short: "MoneyWise Assistente - comandos em linguagem natural para o seu comércio",
	Long: `O assistente MoneyWise interpreta comandos em português para cadastrar
clientes e produtos, registrar fiados e lançamentos no caderno de caixa,
consultar indicadores e navegar pelas páginas do sistema.

Pela linha de comando o assistente funciona apenas com texto.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// .env é opcional
		_ = godotenv.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&tenantID, "tenant", "t", os.Getenv("MONEYWISE_TENANT"), "empresa ativa")
	rootCmd.PersistentFlags().StringVarP(&userID, "user", "u", "cli", "usuário da conversa")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "exibe os logs de depuração")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Erro: %v\n", err)
		os.Exit(1)
	}
}

// newContainer carrega a configuração e monta o assistente
func newContainer(ctx context.Context, cmd *cobra.Command) (*app.Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	log := logger.NewWithWriter(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}, level)

	return app.NewContainer(ctx, cfg, log)
}

func currentSession() assistant.Session {
	return assistant.Session{TenantID: tenantID, UserID: userID}
}

// printReply mostra a resposta do assistente e os avisos de armazenamento
func printReply(w io.Writer, reply *assistant.Reply) {
	fmt.Fprintf(w, "Assistente: %s\n", reply.AssistantMessage.Text)
	if reply.NavigateTo != "" {
		fmt.Fprintf(w, "  -> página %s\n", reply.NavigateTo)
	}
	for _, n := range reply.Notifications {
		fmt.Fprintf(w, "  [aviso] %s\n", n.Message)
	}
}
