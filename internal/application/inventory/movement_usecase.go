package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/application/dto"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/domain"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/domain/entity"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// MovementUseCase registra movimentos manuais (entrada/saida) de forma
// transacional com bloqueio de fila, e consulta o histórico do ledger.
type MovementUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	movRepo     repository.StockMovementRepository
}

// NewMovementUseCase constrói o caso de uso.
func NewMovementUseCase(txRunner TxRunner, productRepo repository.ProductRepository, movRepo repository.StockMovementRepository) *MovementUseCase {
	return &MovementUseCase{txRunner: txRunner, productRepo: productRepo, movRepo: movRepo}
}

// Register grava um movimento manual e aplica o delta na quantidade do item
// na mesma transação. Saida maior que o estoque atual devolve
// domain.ErrInsufficientStock. Entrada para produto ainda sem item de
// estoque cria o item com a quantidade movimentada.
func (uc *MovementUseCase) Register(ctx context.Context, userID string, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	if in.ProductID == "" || !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidMovementType(in.Type) {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	mov := &entity.StockMovement{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		Type:      in.Type,
		Reason:    in.Reason,
		Date:      now,
		UserID:    userID,
		CreatedAt: now,
	}

	err = uc.txRunner.Run(ctx, func(movRepo repository.StockMovementRepository, itemRepo repository.StockItemRepository) error {
		item, err := itemRepo.GetByProductForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if item == nil {
			if in.Type == entity.MovementSaida {
				return domain.ErrNotFound
			}
			item = &entity.StockItem{
				ID:         uuid.New().String(),
				ProductID:  product.ID,
				CategoryID: product.CategoryID,
				UnitID:     product.UnitID,
				Quantity:   in.Quantity,
				Status:     entity.StatusNA,
				CreatedAt:  now,
				UpdatedAt:  now,
			}
			if err := itemRepo.Create(item); err != nil {
				return err
			}
			return movRepo.Create(mov)
		}

		if in.Type == entity.MovementSaida {
			if item.Quantity.LessThan(in.Quantity) {
				return domain.ErrInsufficientStock
			}
			item.Quantity = item.Quantity.Sub(in.Quantity)
		} else {
			item.Quantity = item.Quantity.Add(in.Quantity)
		}
		item.UpdatedAt = now
		if err := itemRepo.Update(item); err != nil {
			return err
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}

	return &dto.MovementResponse{
		ID:          mov.ID,
		ProductID:   mov.ProductID,
		ProductName: product.Name,
		Quantity:    mov.Quantity,
		Type:        mov.Type,
		Reason:      mov.Reason,
		Date:        mov.Date,
		UserID:      mov.UserID,
		CreatedAt:   mov.CreatedAt,
	}, nil
}

// History lista o ledger, filtrado por produto e intervalo de datas
// (filtros opcionais), mais recente primeiro.
func (uc *MovementUseCase) History(ctx context.Context, productID string, from, to *time.Time, limit, offset int) ([]dto.MovementResponse, error) {
	list, err := uc.movRepo.List(productID, from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.MovementResponse{
			ID:          m.ID,
			ProductID:   m.ProductID,
			ProductName: m.ProductName,
			Quantity:    m.Quantity,
			Type:        m.Type,
			Reason:      m.Reason,
			Date:        m.Date,
			UserID:      m.UserID,
			CreatedAt:   m.CreatedAt,
		})
	}
	return out, nil
}
