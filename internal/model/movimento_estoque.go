package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Movement types. A positive Quantidade is stock entering, negative is stock
// leaving (manual correction downwards or automatic daily debit).
const (
	MovimentoCadastro         = "cadastro"
	MovimentoAdicao           = "adicao"
	MovimentoAjusteManual     = "ajuste_manual"
	MovimentoDebitoAutomatico = "debito_automatico"
)

// MovimentoEstoque registra cada mudança de estoque de um remédio.
// Append-only: rows are never updated, and only removed by the cascade when
// the owning medication is deleted. Applying every Quantidade in order from
// zero reconciles exactly with Remedio.EstoqueAtual.
type MovimentoEstoque struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	RemedioID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Tipo            string          `gorm:"not null"`
	Quantidade      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	EstoqueAnterior decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	EstoqueNovo     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt       time.Time

	Remedio *Remedio `gorm:"foreignKey:RemedioID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default pluralization.
func (MovimentoEstoque) TableName() string { return "movimentos_estoque" }

func (m *MovimentoEstoque) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
