package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Setplays/Administracao-de-remedios/internal/apperror"
	"github.com/Setplays/Administracao-de-remedios/internal/model"
	"github.com/Setplays/Administracao-de-remedios/internal/repository"
)

// EstoqueService is the mutation and query surface of the stock ledger.
// Every mutation commits the medication row and its movement record as one
// transaction — no operation is ever observed half-applied.
type EstoqueService interface {
	Cadastrar(ctx context.Context, nome string, dosesPorDia, estoqueInicial decimal.Decimal, unidade string) (*model.Remedio, error)
	AdicionarEstoque(ctx context.Context, id uuid.UUID, quantidade decimal.Decimal) (*model.Remedio, error)
	ModificarEstoque(ctx context.Context, id uuid.UUID, novoTotal decimal.Decimal) (*model.Remedio, error)
	Remover(ctx context.Context, id uuid.UUID) error
	Obter(ctx context.Context, id uuid.UUID) (*model.Remedio, error)
	ObterPorNome(ctx context.Context, nome string) (*model.Remedio, error)
	Listar(ctx context.Context) ([]model.Remedio, error)
	Historico(ctx context.Context, id uuid.UUID) ([]model.MovimentoEstoque, error)
}

type estoqueService struct {
	remedios   repository.RemedioRepository
	movimentos repository.MovimentoRepository
}

func NewEstoqueService(
	remedios repository.RemedioRepository,
	movimentos repository.MovimentoRepository,
) EstoqueService {
	return &estoqueService{remedios: remedios, movimentos: movimentos}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// traduz maps GORM errors onto the ledger's error kinds. Anything not
// recognized is a storage failure.
func traduz(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperror.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperror.ErrDuplicateName
	default:
		return apperror.Storage(err)
	}
}

func (s *estoqueService) Cadastrar(ctx context.Context, nome string, dosesPorDia, estoqueInicial decimal.Decimal, unidade string) (*model.Remedio, error) {
	nome = strings.TrimSpace(nome)
	if nome == "" {
		return nil, apperror.InvalidInputf("nome é obrigatório")
	}
	if !dosesPorDia.IsPositive() {
		return nil, apperror.InvalidInputf("doses por dia deve ser maior que zero")
	}
	if estoqueInicial.IsNegative() {
		return nil, apperror.InvalidInputf("estoque inicial não pode ser negativo")
	}
	if unidade == "" {
		unidade = "comprimido"
	}

	remedio := &model.Remedio{
		Nome:         nome,
		DosesPorDia:  dosesPorDia,
		EstoqueAtual: estoqueInicial,
		Unidade:      unidade,
	}

	err := runTx(ctx, s.remedios.DB(), func(tx *gorm.DB) error {
		if err := s.remedios.CreateTx(tx, remedio); err != nil {
			return err
		}
		// The initial load is the first history entry — but only when
		// there is something on the shelf.
		if estoqueInicial.IsPositive() {
			return s.movimentos.CreateTx(tx, &model.MovimentoEstoque{
				RemedioID:       remedio.ID,
				Tipo:            model.MovimentoCadastro,
				Quantidade:      estoqueInicial,
				EstoqueAnterior: decimal.Zero,
				EstoqueNovo:     estoqueInicial,
			})
		}
		return nil
	})
	if err != nil {
		return nil, traduz(err)
	}
	return remedio, nil
}

func (s *estoqueService) AdicionarEstoque(ctx context.Context, id uuid.UUID, quantidade decimal.Decimal) (*model.Remedio, error) {
	if !quantidade.IsPositive() {
		return nil, apperror.InvalidInputf("quantidade deve ser maior que zero")
	}

	var remedio *model.Remedio
	err := runTx(ctx, s.remedios.DB(), func(tx *gorm.DB) error {
		r, err := s.remedios.FindByIDTx(tx, id)
		if err != nil {
			return err
		}
		anterior := r.EstoqueAtual
		r.EstoqueAtual = anterior.Add(quantidade)
		if err := s.remedios.UpdateEstoqueTx(tx, r.ID, r.EstoqueAtual); err != nil {
			return err
		}
		if err := s.movimentos.CreateTx(tx, &model.MovimentoEstoque{
			RemedioID:       r.ID,
			Tipo:            model.MovimentoAdicao,
			Quantidade:      quantidade,
			EstoqueAnterior: anterior,
			EstoqueNovo:     r.EstoqueAtual,
		}); err != nil {
			return err
		}
		remedio = r
		return nil
	})
	if err != nil {
		return nil, traduz(err)
	}
	return remedio, nil
}

// ModificarEstoque replaces the total unconditionally. The signed difference
// is logged as a movement when non-zero, so the history still reconciles —
// setting the same value twice leaves no trace.
func (s *estoqueService) ModificarEstoque(ctx context.Context, id uuid.UUID, novoTotal decimal.Decimal) (*model.Remedio, error) {
	if novoTotal.IsNegative() {
		return nil, apperror.InvalidInputf("estoque não pode ser negativo")
	}

	var remedio *model.Remedio
	err := runTx(ctx, s.remedios.DB(), func(tx *gorm.DB) error {
		r, err := s.remedios.FindByIDTx(tx, id)
		if err != nil {
			return err
		}
		diferenca := novoTotal.Sub(r.EstoqueAtual)
		anterior := r.EstoqueAtual
		r.EstoqueAtual = novoTotal
		if err := s.remedios.UpdateEstoqueTx(tx, r.ID, novoTotal); err != nil {
			return err
		}
		if !diferenca.IsZero() {
			if err := s.movimentos.CreateTx(tx, &model.MovimentoEstoque{
				RemedioID:       r.ID,
				Tipo:            model.MovimentoAjusteManual,
				Quantidade:      diferenca,
				EstoqueAnterior: anterior,
				EstoqueNovo:     novoTotal,
			}); err != nil {
				return err
			}
		}
		remedio = r
		return nil
	})
	if err != nil {
		return nil, traduz(err)
	}
	return remedio, nil
}

func (s *estoqueService) Remover(ctx context.Context, id uuid.UUID) error {
	err := runTx(ctx, s.remedios.DB(), func(tx *gorm.DB) error {
		// ON DELETE CASCADE apaga todo o histórico junto.
		n, err := s.remedios.DeleteTx(tx, id)
		if err != nil {
			return err
		}
		if n == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	return traduz(err)
}

func (s *estoqueService) Obter(ctx context.Context, id uuid.UUID) (*model.Remedio, error) {
	r, err := s.remedios.FindByID(ctx, id)
	if err != nil {
		return nil, traduz(err)
	}
	return r, nil
}

func (s *estoqueService) ObterPorNome(ctx context.Context, nome string) (*model.Remedio, error) {
	r, err := s.remedios.FindByNome(ctx, nome)
	if err != nil {
		return nil, traduz(err)
	}
	return r, nil
}

func (s *estoqueService) Listar(ctx context.Context) ([]model.Remedio, error) {
	remedios, err := s.remedios.List(ctx)
	if err != nil {
		return nil, traduz(err)
	}
	return remedios, nil
}

func (s *estoqueService) Historico(ctx context.Context, id uuid.UUID) ([]model.MovimentoEstoque, error) {
	movimentos, err := s.movimentos.ListByRemedio(ctx, id)
	if err != nil {
		return nil, traduz(err)
	}
	return movimentos, nil
}
