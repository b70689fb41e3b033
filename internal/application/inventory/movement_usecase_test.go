package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/application/dto"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/application/inventory"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/domain"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/domain/entity"
)

func buildMovementScenario() (*inventory.MovementUseCase, *fakeStore) {
	store := newFakeStore()
	store.items[chopeProductID] = &entity.StockItem{
		ID:        "item-chope",
		ProductID: chopeProductID,
		Quantity:  decimal.NewFromInt(10),
		Status:    entity.StatusCheio,
	}
	products := &fakeProductRepo{products: map[string]*entity.Product{
		chopeProductID:   {ID: chopeProductID, Name: "Chope Pilsen 50L", CategoryID: "cat-chopes"},
		semItemProdutoID: {ID: semItemProdutoID, Name: "Barril Novo 30L", CategoryID: "cat-chopes"},
	}}
	uc := inventory.NewMovementUseCase(
		&fakeTxRunner{store: store},
		products,
		&fakeMovementRepo{store: store},
	)
	return uc, store
}

// Entrada manual soma a quantidade e grava o lançamento no ledger.
func TestMovement_EntradaSomaEstoque(t *testing.T) {
	uc, store := buildMovementScenario()

	resp, err := uc.Register(context.Background(), testUserID, dto.RegisterMovementRequest{
		ProductID: chopeProductID,
		Quantity:  decimal.NewFromInt(5),
		Type:      entity.MovementEntrada,
		Reason:    "Recebimento de fornecedor",
	})
	require.NoError(t, err)

	assert.Equal(t, "Chope Pilsen 50L", resp.ProductName)
	assert.True(t, store.items[chopeProductID].Quantity.Equal(decimal.NewFromInt(15)))
	require.Len(t, store.movements, 1)
	assert.Equal(t, entity.MovementEntrada, store.movements[0].Type)
	assert.Equal(t, "Recebimento de fornecedor", store.movements[0].Reason)
}

// Saida manual subtrai a quantidade.
func TestMovement_SaidaSubtraiEstoque(t *testing.T) {
	uc, store := buildMovementScenario()

	_, err := uc.Register(context.Background(), testUserID, dto.RegisterMovementRequest{
		ProductID: chopeProductID,
		Quantity:  decimal.NewFromInt(4),
		Type:      entity.MovementSaida,
	})
	require.NoError(t, err)

	assert.True(t, store.items[chopeProductID].Quantity.Equal(decimal.NewFromInt(6)))
}

// Saida maior que o estoque atual é rejeitada sem tocar o item nem o ledger.
func TestMovement_SaidaAlemDoEstoque(t *testing.T) {
	uc, store := buildMovementScenario()

	_, err := uc.Register(context.Background(), testUserID, dto.RegisterMovementRequest{
		ProductID: chopeProductID,
		Quantity:  decimal.NewFromInt(11),
		Type:      entity.MovementSaida,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, store.items[chopeProductID].Quantity.Equal(decimal.NewFromInt(10)))
	assert.Empty(t, store.movements)
}

// Entrada para produto sem item de estoque cria o item com a quantidade movimentada.
func TestMovement_EntradaCriaItemQuandoAusente(t *testing.T) {
	uc, store := buildMovementScenario()

	_, err := uc.Register(context.Background(), testUserID, dto.RegisterMovementRequest{
		ProductID: semItemProdutoID,
		Quantity:  decimal.NewFromInt(3),
		Type:      entity.MovementEntrada,
	})
	require.NoError(t, err)

	created, ok := store.items[semItemProdutoID]
	require.True(t, ok)
	assert.True(t, created.Quantity.Equal(decimal.NewFromInt(3)))
	require.Len(t, store.movements, 1)
}

// Saida para produto sem item de estoque não tem de onde subtrair.
func TestMovement_SaidaSemItem(t *testing.T) {
	uc, _ := buildMovementScenario()

	_, err := uc.Register(context.Background(), testUserID, dto.RegisterMovementRequest{
		ProductID: semItemProdutoID,
		Quantity:  decimal.NewFromInt(1),
		Type:      entity.MovementSaida,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Validações de entrada: tipo desconhecido, quantidade não positiva, produto inexistente.
func TestMovement_Validacoes(t *testing.T) {
	uc, _ := buildMovementScenario()
	ctx := context.Background()

	_, err := uc.Register(ctx, testUserID, dto.RegisterMovementRequest{
		ProductID: chopeProductID, Quantity: decimal.NewFromInt(1), Type: "ajuste",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "tipo de movimento desconhecido")

	_, err = uc.Register(ctx, testUserID, dto.RegisterMovementRequest{
		ProductID: chopeProductID, Quantity: decimal.Zero, Type: entity.MovementEntrada,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "quantidade deve ser positiva")

	_, err = uc.Register(ctx, testUserID, dto.RegisterMovementRequest{
		ProductID: "produto-inexistente", Quantity: decimal.NewFromInt(1), Type: entity.MovementEntrada,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "produto precisa existir")
}

// O histórico filtra por produto.
func TestMovement_HistoricoFiltraPorProduto(t *testing.T) {
	uc, store := buildMovementScenario()
	store.movements = append(store.movements,
		&entity.StockMovement{ID: "m1", ProductID: chopeProductID, Type: entity.MovementEntrada, Quantity: decimal.NewFromInt(1)},
		&entity.StockMovement{ID: "m2", ProductID: "outro", Type: entity.MovementSaida, Quantity: decimal.NewFromInt(2)},
	)

	list, err := uc.History(context.Background(), chopeProductID, nil, nil, 50, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "m1", list[0].ID)
}
