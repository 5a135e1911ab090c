package worker

// scanner.go
// Periodic low-stock sweep: re-reads every medication through the worker's
// own DB handle, projects days remaining, and pushes at most one alert per
// medication per pass to the dispatcher. Pacing between alerts is part of
// the contract — rapid-fire delivery is dropped by the desktop transport.

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Setplays/Administracao-de-remedios/internal/notify"
	"github.com/Setplays/Administracao-de-remedios/internal/previsao"
	"github.com/Setplays/Administracao-de-remedios/internal/repository"
)

const (
	defaultLimiteDias   = 5
	defaultScanWarmup   = 10 * time.Second
	defaultScanInterval = 4 * time.Hour
	defaultAlertGap     = 6 * time.Second
)

// ScannerConfig holds all dependencies for the low-stock scanner.
type ScannerConfig struct {
	Remedios   repository.RemedioRepository
	Dispatcher notify.Dispatcher
	Status     notify.Status

	LimiteDias int64         // alerta quando dias restantes <= limite
	Warmup     time.Duration // espera após o início do processo
	Interval   time.Duration // pausa entre varreduras
	AlertGap   time.Duration // pausa obrigatória entre alertas
}

// Scanner is the periodic low-stock alert task.
type Scanner struct {
	cfg ScannerConfig

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration)
}

func NewScanner(cfg ScannerConfig) *Scanner {
	if cfg.LimiteDias <= 0 {
		cfg.LimiteDias = defaultLimiteDias
	}
	if cfg.Warmup <= 0 {
		cfg.Warmup = defaultScanWarmup
	}
	if cfg.Interval <= 0 {
		cfg.Interval = defaultScanInterval
	}
	if cfg.AlertGap <= 0 {
		cfg.AlertGap = defaultAlertGap
	}
	return &Scanner{cfg: cfg, now: time.Now, sleep: sleepCtx}
}

// Start launches the background sweep loop: warm-up, then scan and sleep
// until ctx is cancelled. All waits happen inside this goroutine — the
// caller is never blocked.
func (s *Scanner) Start(ctx context.Context) {
	if s.cfg.Status != notify.StatusReady {
		log.Warn().Msg("scanner: transporte de notificação indisponível, varredura desativada")
		return
	}
	go func() {
		log.Info().Dur("interval", s.cfg.Interval).Msg("scanner: started")
		s.sleep(ctx, s.cfg.Warmup)

		for ctx.Err() == nil {
			if err := s.ScanAndAlert(ctx); err != nil {
				// Storage failure: logged, schedule continues on the
				// next pass.
				log.Error().Err(err).Msg("scanner: falha na verificação de estoque")
			}
			s.sleep(ctx, s.cfg.Interval)
		}
		log.Info().Msg("scanner: shutting down")
	}()
}

// TriggerNow runs a single out-of-band pass without disturbing the periodic
// schedule. Used by the CLI's manual check.
func (s *Scanner) TriggerNow(ctx context.Context) error {
	return s.ScanAndAlert(ctx)
}

// ScanAndAlert does one sweep: fresh read, project, alert. Exactly one alert
// per low medication; depleted stock (zero) is not "low but present" and is
// skipped. Delivery failures are swallowed.
func (s *Scanner) ScanAndAlert(ctx context.Context) error {
	if s.cfg.Status != notify.StatusReady {
		return nil
	}

	remedios, err := s.cfg.Remedios.List(ctx)
	if err != nil {
		return err
	}

	hoje := s.now()
	for i := range remedios {
		r := &remedios[i]
		if !r.DosesPorDia.IsPositive() || !r.EstoqueAtual.IsPositive() {
			continue
		}
		p := previsao.Calcular(r.EstoqueAtual, r.DosesPorDia, hoje)
		if p.Tipo != previsao.Ativa || p.DiasRestantes > s.cfg.LimiteDias {
			continue
		}

		titulo := "Alerta de Estoque Baixo!"
		mensagem := fmt.Sprintf("O remédio '%s' está acabando. Restam apenas %d dias (%s %s).",
			r.Nome, p.DiasRestantes, r.EstoqueAtual.String(), r.Unidade)

		if err := s.cfg.Dispatcher.Deliver(titulo, mensagem); err != nil {
			log.Warn().Err(err).Str("remedio", r.Nome).Msg("scanner: notificação não entregue")
		}
		// Pausa entre alertas para não sobrecarregar o transporte.
		s.sleep(ctx, s.cfg.AlertGap)
	}
	return nil
}

// sleepCtx waits d or until ctx is cancelled, whichever comes first.
func sleepCtx(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
