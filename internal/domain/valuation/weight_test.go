package valuation_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/domain/entity"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/domain/valuation"
)

var draftSet = valuation.NewDraftCategorySet([]string{"Chopes Engatados", "Chopes"})

// ──────────────────────────────────────────────────────────────────────────────
// Tabela de pesos para categorias engatadas
// ──────────────────────────────────────────────────────────────────────────────

func TestWeight_CategoriaEngatada_TabelaDeStatus(t *testing.T) {
	cases := []struct {
		status string
		want   string
	}{
		{entity.StatusFinal, "0.05"},
		{entity.StatusBaixo, "0.25"},
		{entity.StatusMeio, "0.5"},
		{entity.StatusCheio, "1"},
		{entity.StatusNA, "1"},
		{entity.StatusVazio, "1"},
		{"qualquer-coisa", "1"},
	}
	for _, c := range cases {
		got := valuation.Weight(draftSet, "Chopes Engatados", c.status)
		assert.True(t, got.Equal(decimal.RequireFromString(c.want)),
			"status %q deve pesar %s, obtido %s", c.status, c.want, got)
	}
}

func TestWeight_CategoriaForaDoConjunto_SemprePesoCheio(t *testing.T) {
	// Fora das categorias engatadas o status é irrelevante.
	for _, status := range []string{entity.StatusFinal, entity.StatusBaixo, entity.StatusMeio} {
		got := valuation.Weight(draftSet, "Outra Categoria", status)
		assert.True(t, got.Equal(decimal.NewFromInt(1)),
			"categoria fora do conjunto deve pesar 1.0 com status %q", status)
	}
}

func TestWeight_ComparacaoCaseInsensitive(t *testing.T) {
	got := valuation.Weight(draftSet, "chopes engatados", entity.StatusMeio)
	assert.True(t, got.Equal(decimal.NewFromFloat(0.5)),
		"o conjunto de categorias deve ignorar caixa")
}

// ──────────────────────────────────────────────────────────────────────────────
// Custo por linha
// ──────────────────────────────────────────────────────────────────────────────

// Propriedade do spec de negócio: item engatado com status Baixo, qty 10 e
// preço médio 100 custa 100 * 10 * 0.25 = 250.
func TestItemCost_EngatadoBaixo(t *testing.T) {
	cost := valuation.ItemCost(draftSet,
		decimal.NewFromInt(100), decimal.NewFromInt(10), "Chopes Engatados", entity.StatusBaixo)
	assert.True(t, cost.Equal(decimal.NewFromInt(250)), "custo esperado 250, obtido %s", cost)
}

func TestItemCost_CategoriaComum_IgnoraStatus(t *testing.T) {
	cost := valuation.ItemCost(draftSet,
		decimal.NewFromInt(100), decimal.NewFromInt(10), "Outra Categoria", entity.StatusBaixo)
	assert.True(t, cost.Equal(decimal.NewFromInt(1000)), "custo esperado 1000, obtido %s", cost)
}

func TestItemCost_PrecoMedioZero_CustoZero(t *testing.T) {
	cost := valuation.ItemCost(draftSet,
		decimal.Zero, decimal.NewFromInt(10), "Chopes Engatados", entity.StatusCheio)
	assert.True(t, cost.IsZero(), "produto sem preço médio deve custar zero, não falhar")
}
