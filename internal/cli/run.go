package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Setplays/Administracao-de-remedios/internal/apperror"
	"github.com/Setplays/Administracao-de-remedios/internal/infra"
	"github.com/Setplays/Administracao-de-remedios/internal/notify"
	"github.com/Setplays/Administracao-de-remedios/internal/repository"
	"github.com/Setplays/Administracao-de-remedios/internal/worker"
)

// NewRunCommand creates the run command: the long-lived process that keeps
// the ledger synchronized with real time and watches for low stock.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Roda o débito diário automático e o alerta de estoque baixo",
		Long: `Mantém o processo vivo aplicando o débito diário de estoque (inclusive
o atraso acumulado de dias em que o programa ficou fechado) e varrendo
periodicamente os remédios com poucos dias restantes.

Encerra com SIGINT/SIGTERM, parando as tarefas de fundo antes de sair.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(rootOpts)
			if err != nil {
				return err
			}
			defer a.close()

			// Background tasks get their own store handle — the primary
			// one stays with the UI-facing service.
			workerDB, err := infra.NewDatabase(a.cfg.DBPath)
			if err != nil {
				return apperror.Storage(err)
			}
			defer func() {
				if sqlDB, err := workerDB.DB(); err == nil {
					_ = sqlDB.Close()
				}
			}()

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			remedios := repository.NewRemedioRepository(workerDB)
			movimentos := repository.NewMovimentoRepository(workerDB)
			marcador := repository.NewMarcadorRepository(workerDB)

			cron := worker.NewDebitoCron(workerDB, remedios, movimentos, marcador)
			// Catch-up for the days the process was closed. A storage
			// failure here is not fatal: the recurring check retries and
			// the catch-up is idempotent.
			if err := cron.CatchUp(ctx); err != nil {
				log.Error().Err(err).Msg("run: catch-up inicial falhou")
			}
			cron.Start(ctx, a.cfg.DebitCheckInterval)

			scanner := worker.NewScanner(worker.ScannerConfig{
				Remedios:   remedios,
				Dispatcher: notify.LogDispatcher{},
				Status:     notify.StatusReady,
				LimiteDias: a.cfg.LimiteDias,
				Warmup:     a.cfg.ScanWarmup,
				Interval:   a.cfg.ScanInterval,
				AlertGap:   a.cfg.AlertGap,
			})
			scanner.Start(ctx)

			// Graceful shutdown on SIGINT / SIGTERM
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			select {
			case <-quit:
			case <-ctx.Done():
			}

			log.Info().Msg("run: shutting down…")
			cancel()
			return nil
		},
	}
}
