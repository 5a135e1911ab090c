// Package previsao projeta quando o estoque de um remédio acaba, dado o
// consumo diário fixo.
package previsao

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipo distingue os três resultados possíveis de uma projeção.
type Tipo int

const (
	// Ativa: estoque e dose positivos; DiasRestantes e DataFim são válidos.
	Ativa Tipo = iota
	// Esgotado: estoque zerado. DiasRestantes é sempre 0.
	Esgotado
	// Indefinida: dose não positiva, projeção impossível.
	Indefinida
)

// Resultado de uma projeção. Quem exibe decide o texto de cada caso —
// o cálculo não conhece a camada de apresentação.
type Resultado struct {
	Tipo          Tipo
	DiasRestantes int64
	DataFim       time.Time
}

// Calcular é determinística e pura. Dias restantes usam divisão inteira com
// arredondamento para baixo: 9 comprimidos a 2 por dia são 4 dias, não 5.
func Calcular(estoque, dosesPorDia decimal.Decimal, hoje time.Time) Resultado {
	if !dosesPorDia.IsPositive() {
		return Resultado{Tipo: Indefinida}
	}
	if !estoque.IsPositive() {
		return Resultado{Tipo: Esgotado}
	}
	dias := estoque.Div(dosesPorDia).IntPart()
	return Resultado{
		Tipo:          Ativa,
		DiasRestantes: dias,
		DataFim:       hoje.AddDate(0, 0, int(dias)),
	}
}
