package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Setplays/Administracao-de-remedios/internal/notify"
	"github.com/Setplays/Administracao-de-remedios/internal/repository"
	"github.com/Setplays/Administracao-de-remedios/internal/worker"
)

// NewVerificarCommand creates the verificar command: one manual low-stock
// sweep, printing the alerts instead of toasting them.
func NewVerificarCommand(rootOpts *RootOptions) *cobra.Command {
	var limiteDias int64

	cmd := &cobra.Command{
		Use:   "verificar",
		Short: "Verifica o estoque agora e mostra os alertas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(rootOpts)
			if err != nil {
				return err
			}
			defer a.close()

			limite := a.cfg.LimiteDias
			if cmd.Flags().Changed("dias") {
				limite = limiteDias
			}

			scanner := worker.NewScanner(worker.ScannerConfig{
				Remedios:   repository.NewRemedioRepository(a.db),
				Dispatcher: notify.NewWriterDispatcher(cmd.OutOrStdout()),
				Status:     notify.StatusReady,
				LimiteDias: limite,
				// A pausa entre alertas protege o transporte de toasts;
				// imprimir no terminal não precisa dela.
				AlertGap: time.Millisecond,
			})
			if err := scanner.TriggerNow(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Verificação concluída.")
			return nil
		},
	}

	cmd.Flags().Int64Var(&limiteDias, "dias", 0, "limite de dias para alertar (padrão: config)")
	return cmd
}
