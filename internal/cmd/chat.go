package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/hugohenrick/moneywise/pkg/chat"
	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Inicia uma conversa interativa com o assistente",
	Long: `Inicia uma conversa com o assistente. Cada linha é um comando.

Comandos especiais:
  /historico  mostra o histórico da conversa
  /limpar     apaga o histórico
  sair        encerra a conversa`,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	container, err := newContainer(ctx, cmd)
	if err != nil {
		return err
	}
	defer container.Close()

	session := currentSession()
	if session.TenantID == "" {
		fmt.Fprintln(out, "Nenhuma empresa ativa: use --tenant para registrar seus dados.")
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "sair", "exit", "quit":
			return nil
		case "/historico":
			messages, err := container.Assistant.History(ctx, session, 0)
			if err != nil {
				fmt.Fprintf(out, "Erro ao buscar histórico: %v\n", err)
				continue
			}
			printHistory(cmd, messages)
			continue
		case "/limpar":
			if err := container.Assistant.ClearHistory(ctx, session); err != nil {
				fmt.Fprintf(out, "Erro ao apagar histórico: %v\n", err)
				continue
			}
			fmt.Fprintln(out, "Histórico apagado.")
			continue
		}

		reply, err := container.Assistant.SubmitText(ctx, session, line)
		if err != nil {
			fmt.Fprintf(out, "Erro: %v\n", err)
			continue
		}
		printReply(out, reply)
	}

	return scanner.Err()
}

func printHistory(cmd *cobra.Command, messages []chat.Message) {
	out := cmd.OutOrStdout()
	if len(messages) == 0 {
		fmt.Fprintln(out, "Histórico vazio.")
		return
	}
	for _, m := range messages {
		who := "Você"
		if m.Sender == chat.SenderAssistant {
			who = "Assistente"
		}
		fmt.Fprintf(out, "[%s] %s: %s\n", m.Timestamp.Local().Format("02/01 15:04"), who, m.Text)
	}
}
