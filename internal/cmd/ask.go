package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	askAction string
	askParams string
)

var askCmd = &cobra.Command{
	Use:   "ask [comando]",
	Short: "Envia um único comando ao assistente",
	Long: `Envia um comando em linguagem natural e mostra a resposta.

Com --action o texto não é interpretado: a intenção informada é executada
diretamente com os parâmetros em JSON de --params.`,
	Example: `  assistente ask -t "Padaria Pão Quente" "Adicionar fiado de 50 para Maria"
  assistente ask -t "Padaria Pão Quente" --action initiateAddCustomer --params '{"customerName":"João"}'`,
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVar(&askAction, "action", "", "ação estruturada a executar")
	askCmd.Flags().StringVar(&askParams, "params", "", "parâmetros da ação em JSON")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	container, err := newContainer(ctx, cmd)
	if err != nil {
		return err
	}
	defer container.Close()

	if askAction != "" {
		reply, err := container.Assistant.Execute(ctx, currentSession(), askAction, askParams)
		if err != nil {
			return err
		}
		printReply(cmd.OutOrStdout(), reply)
		return nil
	}

	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return fmt.Errorf("informe o comando ou use --action")
	}

	reply, err := container.Assistant.SubmitText(ctx, currentSession(), text)
	if err != nil {
		return err
	}
	printReply(cmd.OutOrStdout(), reply)
	return nil
}
