package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/application/dto"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/domain/entity"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/domain/repository"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/pkg/config"
	"github.com/shopspring/decimal"
)

// DailyCountUseCase concilia a contagem física diária com o estoque corrente.
// Para cada item contado: delta = contado - atual; delta != 0 gera um
// lançamento no ledger (saida se negativo, entrada se positivo, magnitude
// |delta|) e a quantidade é sobrescrita pela contada, tudo na mesma
// transação com bloqueio de fila (SELECT FOR UPDATE).
//
// Itens independentes: a falha de um item não derruba o lote. Submeter a
// mesma contagem duas vezes é idempotente (delta zero não gera movimento).
type DailyCountUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	cfg         config.CountConfig
}

// NewDailyCountUseCase constrói o caso de uso.
func NewDailyCountUseCase(txRunner TxRunner, productRepo repository.ProductRepository, cfg config.CountConfig) *DailyCountUseCase {
	return &DailyCountUseCase{txRunner: txRunner, productRepo: productRepo, cfg: cfg}
}

// Run processa o lote de contagem. Sempre devolve o resumo com o resultado
// de cada item; o erro só é não-nil para falhas fora do processamento
// por item (hoje nenhuma).
func (uc *DailyCountUseCase) Run(ctx context.Context, userID string, items []dto.DailyCountItem) (*dto.DailyCountResult, error) {
	result := &dto.DailyCountResult{
		Items: make([]dto.CountItemResult, 0, len(items)),
	}

	for _, item := range items {
		r := uc.processItem(ctx, userID, item)
		result.Items = append(result.Items, r)
		switch r.Result {
		case dto.CountItemOK:
			result.Processed++
			if r.MovementID != "" {
				result.CreatedMovements++
			}
		case dto.CountItemSkipped:
			result.Processed++
		default:
			result.Failed++
		}
	}

	result.Message = fmt.Sprintf("Contagem processada: %d itens, %d movimentos, %d falhas",
		result.Processed, result.CreatedMovements, result.Failed)
	return result, nil
}

// processItem valida, trava a fila do item e aplica a conciliação de um
// único item contado. Nunca retorna erro: toda falha vira um CountItemResult.
func (uc *DailyCountUseCase) processItem(ctx context.Context, userID string, in dto.DailyCountItem) dto.CountItemResult {
	if in.CountedQuantity.IsNegative() {
		return failed(in.ProductID, dto.CountCodeInvalidQuantity, "quantidade contada não pode ser negativa")
	}
	if in.Status != "" && !entity.ValidStatus(in.Status) {
		return failed(in.ProductID, dto.CountCodeInvalidStatus, fmt.Sprintf("status desconhecido: %q", in.Status))
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return failed(in.ProductID, dto.CountCodeInternal, err.Error())
	}
	if product == nil {
		return failed(in.ProductID, dto.CountCodeProductNotFound, "produto não encontrado")
	}

	reason := in.Reason
	if reason == "" {
		reason = uc.cfg.DefaultReason
	}

	var out dto.CountItemResult
	err = uc.txRunner.Run(ctx, func(movRepo repository.StockMovementRepository, itemRepo repository.StockItemRepository) error {
		stockItem, err := itemRepo.GetByProductForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if stockItem == nil {
			switch uc.cfg.OnMissingItem {
			case config.OnMissingItemCreate:
				out = uc.createItem(itemRepo, product, in)
				return nil
			default:
				out = dto.CountItemResult{
					ProductID: in.ProductID,
					Result:    dto.CountItemSkipped,
					Code:      dto.CountCodeItemNotFound,
					Message:   "produto sem item de estoque; contagem ignorada",
				}
				return nil
			}
		}

		now := time.Now()
		delta := in.CountedQuantity.Sub(stockItem.Quantity)

		movementID := ""
		if !delta.IsZero() {
			movType := entity.MovementEntrada
			if delta.IsNegative() {
				movType = entity.MovementSaida
			}
			mov := &entity.StockMovement{
				ID:        uuid.New().String(),
				ProductID: in.ProductID,
				Quantity:  delta.Abs(),
				Type:      movType,
				Reason:    reason,
				Date:      now,
				UserID:    userID,
				CreatedAt: now,
			}
			if err := movRepo.Create(mov); err != nil {
				return err
			}
			movementID = mov.ID
		}

		stockItem.Quantity = in.CountedQuantity
		if in.Status != "" {
			stockItem.Status = in.Status
		}
		stockItem.UpdatedAt = now
		if err := itemRepo.Update(stockItem); err != nil {
			return err
		}

		out = dto.CountItemResult{
			ProductID:  in.ProductID,
			Result:     dto.CountItemOK,
			Delta:      &delta,
			MovementID: movementID,
		}
		return nil
	})
	if err != nil {
		return failed(in.ProductID, dto.CountCodeInternal, err.Error())
	}
	return out
}

// createItem aplica a política "create": o produto contado ainda não tem
// item de estoque, então criamos um com a quantidade contada congelada.
// Sem quantidade anterior não há delta, logo não há movimento.
func (uc *DailyCountUseCase) createItem(itemRepo repository.StockItemRepository, product *entity.Product, in dto.DailyCountItem) dto.CountItemResult {
	status := in.Status
	if status == "" {
		status = entity.StatusNA
	}
	now := time.Now()
	item := &entity.StockItem{
		ID:         uuid.New().String(),
		ProductID:  product.ID,
		CategoryID: product.CategoryID,
		UnitID:     product.UnitID,
		Quantity:   in.CountedQuantity,
		StockMin:   decimal.Zero,
		StockMax:   decimal.Zero,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := itemRepo.Create(item); err != nil {
		return failed(in.ProductID, dto.CountCodeInternal, err.Error())
	}
	return dto.CountItemResult{
		ProductID: in.ProductID,
		Result:    dto.CountItemOK,
		Message:   "item de estoque criado a partir da contagem",
	}
}

func failed(productID, code, message string) dto.CountItemResult {
	return dto.CountItemResult{
		ProductID: productID,
		Result:    dto.CountItemFailed,
		Code:      code,
		Message:   message,
	}
}
