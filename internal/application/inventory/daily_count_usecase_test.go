package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/application/dto"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/application/inventory"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/domain/entity"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/domain/repository"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/pkg/config"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

// fakeStore guarda itens por produto e o ledger em memória. Os fakes de
// repositório e o TxRunner compartilham o mesmo store, imitando repositórios
// atados à mesma transação.
type fakeStore struct {
	items     map[string]*entity.StockItem
	movements []*entity.StockMovement
}

func newFakeStore() *fakeStore {
	return &fakeStore{items: make(map[string]*entity.StockItem)}
}

type fakeItemRepo struct{ store *fakeStore }

func (f *fakeItemRepo) Create(item *entity.StockItem) error {
	cp := *item
	f.store.items[item.ProductID] = &cp
	return nil
}

func (f *fakeItemRepo) GetByID(id string) (*entity.StockItem, error) {
	for _, it := range f.store.items {
		if it.ID == id {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeItemRepo) GetByProduct(productID string) (*entity.StockItem, error) {
	if it, ok := f.store.items[productID]; ok {
		cp := *it
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeItemRepo) GetByProductForUpdate(productID string) (*entity.StockItem, error) {
	return f.GetByProduct(productID)
}

func (f *fakeItemRepo) Update(item *entity.StockItem) error {
	cp := *item
	f.store.items[item.ProductID] = &cp
	return nil
}

func (f *fakeItemRepo) Delete(id string) error { return nil }

func (f *fakeItemRepo) ListDetailed(ctx context.Context, limit, offset int) ([]repository.StockItemDetail, error) {
	return nil, nil
}

func (f *fakeItemRepo) ListForValuation(ctx context.Context, start, end time.Time) ([]repository.ValuationRow, error) {
	return nil, nil
}

type fakeMovementRepo struct{ store *fakeStore }

func (f *fakeMovementRepo) Create(m *entity.StockMovement) error {
	cp := *m
	f.store.movements = append(f.store.movements, &cp)
	return nil
}

func (f *fakeMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	for _, m := range f.store.movements {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeMovementRepo) List(productID string, from, to *time.Time, limit, offset int) ([]repository.MovementDetail, error) {
	out := make([]repository.MovementDetail, 0, len(f.store.movements))
	for _, m := range f.store.movements {
		if productID != "" && m.ProductID != productID {
			continue
		}
		out = append(out, repository.MovementDetail{StockMovement: *m})
	}
	return out, nil
}

type fakeTxRunner struct{ store *fakeStore }

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	itemRepo repository.StockItemRepository,
) error) error {
	return fn(&fakeMovementRepo{store: f.store}, &fakeItemRepo{store: f.store})
}

type fakeProductRepo struct{ products map[string]*entity.Product }

func (f *fakeProductRepo) Create(p *entity.Product) error { f.products[p.ID] = p; return nil }

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	if p, ok := f.products[id]; ok {
		return p, nil
	}
	return nil, nil
}

func (f *fakeProductRepo) GetByName(name string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) Update(p *entity.Product) error { f.products[p.ID] = p; return nil }

func (f *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) { return nil, nil }

func (f *fakeProductRepo) Delete(id string) error { delete(f.products, id); return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Cenário base
// ──────────────────────────────────────────────────────────────────────────────

const (
	testUserID      = "00000000-0000-0000-0000-0000000000aa"
	chopeProductID  = "00000000-0000-0000-0000-000000000001"
	aguaProductID   = "00000000-0000-0000-0000-000000000002"
	semItemProdutoID = "00000000-0000-0000-0000-000000000003"
)

func buildScenario(onMissing string) (*inventory.DailyCountUseCase, *fakeStore) {
	store := newFakeStore()
	store.items[chopeProductID] = &entity.StockItem{
		ID:        "item-chope",
		ProductID: chopeProductID,
		Quantity:  decimal.NewFromInt(10),
		Status:    entity.StatusCheio,
	}
	store.items[aguaProductID] = &entity.StockItem{
		ID:        "item-agua",
		ProductID: aguaProductID,
		Quantity:  decimal.NewFromInt(24),
		Status:    entity.StatusNA,
	}

	products := &fakeProductRepo{products: map[string]*entity.Product{
		chopeProductID:   {ID: chopeProductID, Name: "Chope Pilsen 50L", CategoryID: "cat-chopes"},
		aguaProductID:    {ID: aguaProductID, Name: "Água Mineral 500ml", CategoryID: "cat-bebidas"},
		semItemProdutoID: {ID: semItemProdutoID, Name: "Barril Novo 30L", CategoryID: "cat-chopes"},
	}}

	uc := inventory.NewDailyCountUseCase(
		&fakeTxRunner{store: store},
		products,
		config.CountConfig{OnMissingItem: onMissing, DefaultReason: "Contagem diária"},
	)
	return uc, store
}

func countOf(qty int64) dto.DailyCountItem {
	return dto.DailyCountItem{ProductID: chopeProductID, CountedQuantity: decimal.NewFromInt(qty)}
}

// ──────────────────────────────────────────────────────────────────────────────
// Conciliação: delta, sinal do movimento e sobrescrita da quantidade
// ──────────────────────────────────────────────────────────────────────────────

// Contagem abaixo do estoque atual: delta negativo vira saida com a
// magnitude |delta| e a quantidade é sobrescrita pela contada.
func TestDailyCount_DeltaNegativoGeraSaida(t *testing.T) {
	uc, store := buildScenario(config.OnMissingItemSkip)

	res, err := uc.Run(context.Background(), testUserID, []dto.DailyCountItem{countOf(7)})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)

	r := res.Items[0]
	assert.Equal(t, dto.CountItemOK, r.Result)
	require.NotNil(t, r.Delta)
	assert.True(t, r.Delta.Equal(decimal.NewFromInt(-3)), "delta deve ser contado - atual = -3")

	require.Len(t, store.movements, 1)
	mov := store.movements[0]
	assert.Equal(t, entity.MovementSaida, mov.Type)
	assert.True(t, mov.Quantity.Equal(decimal.NewFromInt(3)), "movimento guarda a magnitude positiva")
	assert.Equal(t, "Contagem diária", mov.Reason)
	assert.Equal(t, testUserID, mov.UserID)

	assert.True(t, store.items[chopeProductID].Quantity.Equal(decimal.NewFromInt(7)),
		"quantidade do item deve ser sobrescrita pela contada")
}

// Contagem acima do estoque atual: delta positivo vira entrada.
func TestDailyCount_DeltaPositivoGeraEntrada(t *testing.T) {
	uc, store := buildScenario(config.OnMissingItemSkip)

	res, err := uc.Run(context.Background(), testUserID, []dto.DailyCountItem{countOf(15)})
	require.NoError(t, err)
	require.Equal(t, 1, res.CreatedMovements)

	require.Len(t, store.movements, 1)
	assert.Equal(t, entity.MovementEntrada, store.movements[0].Type)
	assert.True(t, store.movements[0].Quantity.Equal(decimal.NewFromInt(5)))
	assert.True(t, store.items[chopeProductID].Quantity.Equal(decimal.NewFromInt(15)))
}

// Contagem igual ao estoque atual: delta zero não gera movimento. Submeter
// a mesma contagem duas vezes seguidas é idempotente.
func TestDailyCount_DeltaZeroEhIdempotente(t *testing.T) {
	uc, store := buildScenario(config.OnMissingItemSkip)

	// Primeira submissão muda a quantidade e gera um movimento.
	_, err := uc.Run(context.Background(), testUserID, []dto.DailyCountItem{countOf(7)})
	require.NoError(t, err)
	require.Len(t, store.movements, 1)

	// Segunda submissão idêntica: delta zero, nenhum movimento novo.
	res, err := uc.Run(context.Background(), testUserID, []dto.DailyCountItem{countOf(7)})
	require.NoError(t, err)

	r := res.Items[0]
	assert.Equal(t, dto.CountItemOK, r.Result)
	require.NotNil(t, r.Delta)
	assert.True(t, r.Delta.IsZero())
	assert.Empty(t, r.MovementID, "delta zero não deve criar movimento")
	assert.Len(t, store.movements, 1, "o ledger não deve ganhar lançamentos com delta zero")
	assert.Equal(t, 0, res.CreatedMovements)
}

// O status enviado sobrescreve o atual mesmo quando o delta é zero.
func TestDailyCount_StatusSobrescritoMesmoComDeltaZero(t *testing.T) {
	uc, store := buildScenario(config.OnMissingItemSkip)

	_, err := uc.Run(context.Background(), testUserID, []dto.DailyCountItem{
		{ProductID: chopeProductID, CountedQuantity: decimal.NewFromInt(10), Status: entity.StatusBaixo},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.StatusBaixo, store.items[chopeProductID].Status)
	assert.Empty(t, store.movements, "delta zero não gera movimento, mas o status muda")
}

// Sem status na submissão, o status atual do item é preservado.
func TestDailyCount_StatusAusentePreservaAtual(t *testing.T) {
	uc, store := buildScenario(config.OnMissingItemSkip)

	_, err := uc.Run(context.Background(), testUserID, []dto.DailyCountItem{countOf(7)})
	require.NoError(t, err)

	assert.Equal(t, entity.StatusCheio, store.items[chopeProductID].Status)
}

// Motivo informado na submissão tem prioridade sobre o default.
func TestDailyCount_MotivoInformadoPrevalece(t *testing.T) {
	uc, store := buildScenario(config.OnMissingItemSkip)

	_, err := uc.Run(context.Background(), testUserID, []dto.DailyCountItem{
		{ProductID: chopeProductID, CountedQuantity: decimal.NewFromInt(2), Reason: "Quebra de barril"},
	})
	require.NoError(t, err)

	require.Len(t, store.movements, 1)
	assert.Equal(t, "Quebra de barril", store.movements[0].Reason)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validações e sucesso parcial do lote
// ──────────────────────────────────────────────────────────────────────────────

// Um lote com itens válidos e inválidos processa os válidos e reporta as
// falhas item a item, sem derrubar o lote inteiro.
func TestDailyCount_LoteComFalhasParciais(t *testing.T) {
	uc, store := buildScenario(config.OnMissingItemSkip)

	res, err := uc.Run(context.Background(), testUserID, []dto.DailyCountItem{
		{ProductID: chopeProductID, CountedQuantity: decimal.NewFromInt(8)},                            // ok, gera saida
		{ProductID: aguaProductID, CountedQuantity: decimal.NewFromInt(-1)},                           // quantidade inválida
		{ProductID: "produto-inexistente", CountedQuantity: decimal.NewFromInt(5)},                    // produto não existe
		{ProductID: semItemProdutoID, CountedQuantity: decimal.NewFromInt(3)},                         // sem item de estoque (skip)
		{ProductID: aguaProductID, CountedQuantity: decimal.NewFromInt(20), Status: "Transbordando"},  // status inválido
	})
	require.NoError(t, err)
	require.Len(t, res.Items, 5)

	assert.Equal(t, dto.CountItemOK, res.Items[0].Result)
	assert.Equal(t, dto.CountItemFailed, res.Items[1].Result)
	assert.Equal(t, dto.CountCodeInvalidQuantity, res.Items[1].Code)
	assert.Equal(t, dto.CountItemFailed, res.Items[2].Result)
	assert.Equal(t, dto.CountCodeProductNotFound, res.Items[2].Code)
	assert.Equal(t, dto.CountItemSkipped, res.Items[3].Result)
	assert.Equal(t, dto.CountCodeItemNotFound, res.Items[3].Code)
	assert.Equal(t, dto.CountItemFailed, res.Items[4].Result)
	assert.Equal(t, dto.CountCodeInvalidStatus, res.Items[4].Code)

	assert.Equal(t, 2, res.Processed, "ok + skipped contam como processados")
	assert.Equal(t, 3, res.Failed)
	assert.Equal(t, 1, res.CreatedMovements)

	// O item válido foi aplicado; o inválido do mesmo lote não tocou a água.
	assert.True(t, store.items[chopeProductID].Quantity.Equal(decimal.NewFromInt(8)))
	assert.True(t, store.items[aguaProductID].Quantity.Equal(decimal.NewFromInt(24)),
		"itens com falha não devem alterar o estoque")
}

// ──────────────────────────────────────────────────────────────────────────────
// Política para produto sem item de estoque
// ──────────────────────────────────────────────────────────────────────────────

// Política create: o item nasce com a quantidade contada congelada e sem
// movimento (não há quantidade anterior para gerar delta).
func TestDailyCount_PoliticaCreateCriaItemSemMovimento(t *testing.T) {
	uc, store := buildScenario(config.OnMissingItemCreate)

	res, err := uc.Run(context.Background(), testUserID, []dto.DailyCountItem{
		{ProductID: semItemProdutoID, CountedQuantity: decimal.NewFromInt(12), Status: entity.StatusCheio},
	})
	require.NoError(t, err)

	r := res.Items[0]
	assert.Equal(t, dto.CountItemOK, r.Result)
	assert.Empty(t, r.MovementID)

	created, ok := store.items[semItemProdutoID]
	require.True(t, ok, "o item de estoque deve ser criado")
	assert.True(t, created.Quantity.Equal(decimal.NewFromInt(12)))
	assert.Equal(t, entity.StatusCheio, created.Status)
	assert.Equal(t, "cat-chopes", created.CategoryID, "categoria herdada do produto")
	assert.Empty(t, store.movements)
}
