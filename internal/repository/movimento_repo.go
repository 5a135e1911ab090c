package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Setplays/Administracao-de-remedios/internal/model"
)

type MovimentoRepository interface {
	CreateTx(tx *gorm.DB, m *model.MovimentoEstoque) error
	// ListByRemedio returns the movement history, newest first. An unknown
	// or removed id yields an empty slice, never an error.
	ListByRemedio(ctx context.Context, remedioID uuid.UUID) ([]model.MovimentoEstoque, error)
}

type movimentoRepo struct{ db *gorm.DB }

func NewMovimentoRepository(db *gorm.DB) MovimentoRepository {
	return &movimentoRepo{db: db}
}

func (r *movimentoRepo) CreateTx(tx *gorm.DB, m *model.MovimentoEstoque) error {
	return tx.Create(m).Error
}

func (r *movimentoRepo) ListByRemedio(ctx context.Context, remedioID uuid.UUID) ([]model.MovimentoEstoque, error) {
	var movimentos []model.MovimentoEstoque
	err := r.db.WithContext(ctx).
		Where("remedio_id = ?", remedioID).
		Order("created_at DESC").
		Find(&movimentos).Error
	return movimentos, err
}
