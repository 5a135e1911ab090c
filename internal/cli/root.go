// Package cli is the user-facing collaborator surface of the ledger — the
// role the desktop form plays elsewhere. It only calls into the service and
// workers and renders their results; no ledger logic lives here.
package cli

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/Setplays/Administracao-de-remedios/internal/apperror"
	"github.com/Setplays/Administracao-de-remedios/internal/config"
	"github.com/Setplays/Administracao-de-remedios/internal/infra"
	"github.com/Setplays/Administracao-de-remedios/internal/model"
	"github.com/Setplays/Administracao-de-remedios/internal/repository"
	"github.com/Setplays/Administracao-de-remedios/internal/service"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	DBPath string
}

// NewRootCommand creates the root command for the remedios CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "remedios",
		Short:         "Administração de remédios",
		Long:          "Controle de estoque de remédios com débito diário automático e alertas de estoque baixo.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.DBPath, "db", "", "caminho do banco SQLite (padrão: config DB_PATH)")

	cmd.AddCommand(NewCadastrarCommand(opts))
	cmd.AddCommand(NewAdicionarCommand(opts))
	cmd.AddCommand(NewModificarCommand(opts))
	cmd.AddCommand(NewRemoverCommand(opts))
	cmd.AddCommand(NewListarCommand(opts))
	cmd.AddCommand(NewHistoricoCommand(opts))
	cmd.AddCommand(NewVerificarCommand(opts))
	cmd.AddCommand(NewRunCommand(opts))

	return cmd
}

// app bundles everything a command needs once the store is open.
type app struct {
	cfg *config.Config
	db  *gorm.DB
	svc service.EstoqueService
}

// setup loads config and opens the primary store handle.
func setup(opts *RootOptions) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if opts.DBPath != "" {
		cfg.DBPath = opts.DBPath
	}
	db, err := infra.NewDatabase(cfg.DBPath)
	if err != nil {
		return nil, apperror.Storage(err)
	}
	svc := service.NewEstoqueService(
		repository.NewRemedioRepository(db),
		repository.NewMovimentoRepository(db),
	)
	return &app{cfg: cfg, db: db, svc: svc}, nil
}

func (a *app) close() {
	if sqlDB, err := a.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// resolver finds a medication by name, the way the user refers to it.
func (a *app) resolver(ctx context.Context, nome string) (*model.Remedio, error) {
	return a.svc.ObterPorNome(ctx, strings.TrimSpace(nome))
}

// parseQuantidade accepts both decimal separators ("1,5" and "1.5").
func parseQuantidade(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(s), ",", "."))
	if err != nil {
		return decimal.Zero, apperror.InvalidInputf("%q não é um número válido", s)
	}
	return d, nil
}
