package repository

import (
	"gorm.io/gorm"

	"github.com/Setplays/Administracao-de-remedios/internal/model"
)

// MarcadorRepository manages the single processing-marker row. Only the
// debit engine touches it, always inside the same transaction that updates
// the stock rows — hence the Tx-only surface.
type MarcadorRepository interface {
	GetTx(tx *gorm.DB) (*model.MarcadorProcessamento, error)
	CreateTx(tx *gorm.DB, data string) error
	AdvanceTx(tx *gorm.DB, data string) error
}

type marcadorRepo struct{ db *gorm.DB }

func NewMarcadorRepository(db *gorm.DB) MarcadorRepository { return &marcadorRepo{db: db} }

func (r *marcadorRepo) GetTx(tx *gorm.DB) (*model.MarcadorProcessamento, error) {
	var m model.MarcadorProcessamento
	err := tx.First(&m, "id = ?", model.MarcadorID).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *marcadorRepo) CreateTx(tx *gorm.DB, data string) error {
	return tx.Create(&model.MarcadorProcessamento{
		ID:                   model.MarcadorID,
		UltimaDataProcessada: data,
	}).Error
}

func (r *marcadorRepo) AdvanceTx(tx *gorm.DB, data string) error {
	return tx.Model(&model.MarcadorProcessamento{}).
		Where("id = ?", model.MarcadorID).
		Update("ultima_data_processada", data).Error
}
