package model

// MarcadorID is the primary key of the single marker row.
const MarcadorID = 1

// MarcadorProcessamento is the durable checkpoint of the last calendar date
// through which automatic daily debits were applied. Exactly one row exists;
// the date only moves forward. Stored as "YYYY-MM-DD" — no time component,
// no timezone ambiguity.
type MarcadorProcessamento struct {
	ID                   int    `gorm:"primaryKey"`
	UltimaDataProcessada string `gorm:"not null"`
}

func (MarcadorProcessamento) TableName() string { return "marcador_processamento" }
