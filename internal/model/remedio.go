package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Remedio is a tracked medication: a fixed daily consumption rate and the
// authoritative current stock. EstoqueAtual never goes negative — automatic
// debits clamp at zero.
type Remedio struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Nome         string          `gorm:"uniqueIndex;not null"`
	DosesPorDia  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	EstoqueAtual decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Unidade      string          `gorm:"not null;default:'comprimido'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Remedio) TableName() string { return "remedios" }

// BeforeCreate assigns the id — SQLite has no uuid generator of its own.
func (r *Remedio) BeforeCreate(*gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
