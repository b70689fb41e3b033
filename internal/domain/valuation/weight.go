// Package valuation implementa a regra de valorização ponderada do estoque
// (serviço de domínio puro, sem I/O).
//
// A tabela de pesos aproxima o valor residual de vasilhames parcialmente
// consumidos: um barril "Final" ainda ocupa uma linha inteira do inventário,
// mas valorizá-lo a preço cheio superestimaria o custo da mercadoria vendida.
// A fração só se aplica a categorias de chope engatado; qualquer outra
// categoria vale 1.0 independente do status.
package valuation

import (
	"strings"

	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Tabela status → fração de enchimento. Status desconhecido ou N/A vale 1.0.
var statusWeights = map[string]decimal.Decimal{
	entity.StatusFinal: decimal.NewFromFloat(0.05),
	entity.StatusBaixo: decimal.NewFromFloat(0.25),
	entity.StatusMeio:  decimal.NewFromFloat(0.50),
	entity.StatusCheio: decimal.NewFromInt(1),
}

// DraftCategorySet conjunto de categorias engatadas, normalizado para
// comparação case-insensitive.
type DraftCategorySet map[string]struct{}

// NewDraftCategorySet constrói o conjunto a partir dos nomes configurados.
func NewDraftCategorySet(names []string) DraftCategorySet {
	s := make(DraftCategorySet, len(names))
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n != "" {
			s[n] = struct{}{}
		}
	}
	return s
}

// Contains informa se o nome de categoria pertence ao conjunto.
func (s DraftCategorySet) Contains(categoryName string) bool {
	_, ok := s[strings.ToLower(strings.TrimSpace(categoryName))]
	return ok
}

// Weight devolve o peso [0,1] aplicado ao custo de um item de estoque.
// Fora do conjunto de categorias engatadas o peso é sempre 1.0.
func Weight(draft DraftCategorySet, categoryName, status string) decimal.Decimal {
	if !draft.Contains(categoryName) {
		return decimal.NewFromInt(1)
	}
	if w, ok := statusWeights[status]; ok {
		return w
	}
	return decimal.NewFromInt(1)
}

// ItemCost custo de uma linha do inventário:
// avgPrice * quantity * Weight(categoria, status).
// Preço médio zero (produto sem custo cadastrado) resulta em custo zero.
func ItemCost(draft DraftCategorySet, avgPrice, quantity decimal.Decimal, categoryName, status string) decimal.Decimal {
	return avgPrice.Mul(quantity).Mul(Weight(draft, categoryName, status))
}
