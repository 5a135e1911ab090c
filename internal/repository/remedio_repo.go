package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Setplays/Administracao-de-remedios/internal/model"
)

// RemedioRepository defines the data access contract for medications.
// Services and workers depend on this interface, not on the concrete GORM
// implementation, enabling unit testing via stubs.
type RemedioRepository interface {
	CreateTx(tx *gorm.DB, r *model.Remedio) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Remedio, error)
	FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Remedio, error)
	FindByNome(ctx context.Context, nome string) (*model.Remedio, error)
	List(ctx context.Context) ([]model.Remedio, error)
	ListTx(tx *gorm.DB) ([]model.Remedio, error)

	// UpdateEstoqueTx replaces estoque_atual inside an open transaction.
	UpdateEstoqueTx(tx *gorm.DB, id uuid.UUID, novo decimal.Decimal) error
	// DeleteTx removes the medication; movement rows go with it via the
	// ON DELETE CASCADE constraint. Returns the number of rows deleted.
	DeleteTx(tx *gorm.DB, id uuid.UUID) (int64, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type remedioRepo struct{ db *gorm.DB }

func NewRemedioRepository(db *gorm.DB) RemedioRepository { return &remedioRepo{db: db} }

func (r *remedioRepo) CreateTx(tx *gorm.DB, m *model.Remedio) error {
	return tx.Create(m).Error
}

func (r *remedioRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Remedio, error) {
	var m model.Remedio
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *remedioRepo) FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Remedio, error) {
	var m model.Remedio
	err := tx.First(&m, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *remedioRepo) FindByNome(ctx context.Context, nome string) (*model.Remedio, error) {
	var m model.Remedio
	err := r.db.WithContext(ctx).Where("nome = ?", nome).First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// List returns medications in storage order — callers must not assume any
// particular sorting.
func (r *remedioRepo) List(ctx context.Context) ([]model.Remedio, error) {
	var remedios []model.Remedio
	err := r.db.WithContext(ctx).Find(&remedios).Error
	return remedios, err
}

func (r *remedioRepo) ListTx(tx *gorm.DB) ([]model.Remedio, error) {
	var remedios []model.Remedio
	err := tx.Find(&remedios).Error
	return remedios, err
}

func (r *remedioRepo) UpdateEstoqueTx(tx *gorm.DB, id uuid.UUID, novo decimal.Decimal) error {
	return tx.Model(&model.Remedio{}).Where("id = ?", id).
		Update("estoque_atual", novo).Error
}

func (r *remedioRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) (int64, error) {
	res := tx.Where("id = ?", id).Delete(&model.Remedio{})
	return res.RowsAffected, res.Error
}

func (r *remedioRepo) DB() *gorm.DB { return r.db }
