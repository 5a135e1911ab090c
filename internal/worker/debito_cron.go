package worker

// debito_cron.go
// Keeps estoque_atual in sync with the passage of real time: for every
// whole calendar day elapsed since the processing marker, each medication
// loses doses_por_dia units, clamped at zero. Runs once at startup to catch
// up on days the process was closed, then on a recurring tick to catch the
// midnight rollover while it stays alive.

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Setplays/Administracao-de-remedios/internal/model"
	"github.com/Setplays/Administracao-de-remedios/internal/repository"
)

const debitTickInterval = 10 * time.Minute

// DebitoCron applies the daily automatic debit. It owns its own DB handle —
// never the one serving the UI.
type DebitoCron struct {
	db         *gorm.DB
	remedios   repository.RemedioRepository
	movimentos repository.MovimentoRepository
	marcador   repository.MarcadorRepository

	now func() time.Time
}

func NewDebitoCron(
	db *gorm.DB,
	remedios repository.RemedioRepository,
	movimentos repository.MovimentoRepository,
	marcador repository.MarcadorRepository,
) *DebitoCron {
	return &DebitoCron{
		db:         db,
		remedios:   remedios,
		movimentos: movimentos,
		marcador:   marcador,
		now:        time.Now,
	}
}

// CatchUp applies debits for every whole day elapsed since the marker and
// advances it to today, all in ONE transaction: a crash mid-update can never
// leave some medications debited with the marker behind, so a retry never
// double-debits. Calling it twice on the same day is a no-op.
//
// On first run (no marker row) it initializes the marker to today without
// debiting — there is nothing prior to catch up on. A marker in the future
// (clock skew) debits nothing and stays where it is: the marker only moves
// forward.
func (c *DebitoCron) CatchUp(ctx context.Context) error {
	hoje := c.now().Format(time.DateOnly)

	return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		marcador, err := c.marcador.GetTx(tx)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Info().Str("data", hoje).Msg("debito_cron: primeira execução, marcador inicializado")
			return c.marcador.CreateTx(tx, hoje)
		}
		if err != nil {
			return err
		}

		dias := diasEntre(marcador.UltimaDataProcessada, hoje)
		if dias <= 0 {
			return nil
		}

		remedios, err := c.remedios.ListTx(tx)
		if err != nil {
			return err
		}

		fator := decimal.NewFromInt(int64(dias))
		for i := range remedios {
			r := &remedios[i]
			if !r.DosesPorDia.IsPositive() {
				continue
			}
			debito := r.DosesPorDia.Mul(fator)
			if debito.GreaterThan(r.EstoqueAtual) {
				debito = r.EstoqueAtual // nunca deixa o estoque negativo
			}
			if debito.IsZero() {
				continue
			}
			novo := r.EstoqueAtual.Sub(debito)
			if err := c.remedios.UpdateEstoqueTx(tx, r.ID, novo); err != nil {
				return err
			}
			if err := c.movimentos.CreateTx(tx, &model.MovimentoEstoque{
				RemedioID:       r.ID,
				Tipo:            model.MovimentoDebitoAutomatico,
				Quantidade:      debito.Neg(),
				EstoqueAnterior: r.EstoqueAtual,
				EstoqueNovo:     novo,
			}); err != nil {
				return err
			}
		}

		// Marker advances last, inside the same transaction.
		if err := c.marcador.AdvanceTx(tx, hoje); err != nil {
			return err
		}

		log.Info().Int("dias", dias).Str("ate", hoje).Msg("debito_cron: débito automático aplicado")
		return nil
	})
}

// Start launches the recurring midnight check. Each tick runs the same
// catch-up; a storage failure is logged and the next tick proceeds — never
// fatal to the process. Stops when ctx is cancelled.
func (c *DebitoCron) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = debitTickInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		log.Info().Dur("interval", interval).Msg("debito_cron: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("debito_cron: shutting down")
				return
			case <-ticker.C:
				if err := c.CatchUp(ctx); err != nil {
					log.Error().Err(err).Msg("debito_cron: falha ao aplicar débito")
				}
			}
		}
	}()
}

// diasEntre conta dias de calendário entre duas datas "YYYY-MM-DD".
// Datas inválidas ou futuras contam como zero.
func diasEntre(de, ate string) int {
	inicio, err := time.Parse(time.DateOnly, de)
	if err != nil {
		return 0
	}
	fim, err := time.Parse(time.DateOnly, ate)
	if err != nil {
		return 0
	}
	dias := int(fim.Sub(inicio).Hours() / 24)
	if dias < 0 {
		return 0
	}
	return dias
}
