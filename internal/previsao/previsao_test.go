package previsao

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCalcularArredondaParaBaixo(t *testing.T) {
	hoje := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		nome    string
		estoque string
		doses   string
		dias    int64
	}{
		{"divisão exata", "8", "2", 4},
		{"sobra descartada", "9", "2", 4},
		{"dose fracionária", "10", "1.5", 6},
		{"estoque fracionário", "7.5", "2.5", 3},
		{"menos de um dia", "1", "5", 0},
		{"dízima periódica", "10", "3", 3},
	}
	for _, tt := range tests {
		t.Run(tt.nome, func(t *testing.T) {
			p := Calcular(dec(tt.estoque), dec(tt.doses), hoje)
			assert.Equal(t, Ativa, p.Tipo)
			assert.Equal(t, tt.dias, p.DiasRestantes)
			assert.Equal(t, hoje.AddDate(0, 0, int(tt.dias)), p.DataFim)
		})
	}
}

func TestCalcularEsgotado(t *testing.T) {
	p := Calcular(decimal.Zero, dec("2"), time.Now())
	assert.Equal(t, Esgotado, p.Tipo)
	assert.EqualValues(t, 0, p.DiasRestantes)
}

func TestCalcularDoseInvalida(t *testing.T) {
	assert.Equal(t, Indefinida, Calcular(dec("10"), decimal.Zero, time.Now()).Tipo)
	assert.Equal(t, Indefinida, Calcular(dec("10"), dec("-1"), time.Now()).Tipo)
}

func TestCalcularDeterministica(t *testing.T) {
	hoje := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	a := Calcular(dec("33"), dec("4"), hoje)
	b := Calcular(dec("33"), dec("4"), hoje)
	assert.Equal(t, a, b)
	assert.EqualValues(t, 8, a.DiasRestantes)
}
