package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/application/dto"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/domain"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/domain/entity"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/domain/repository"
)

// StockItemUseCase casos de uso CRUD para itens de estoque. A conciliação
// diária e os movimentos manuais vivem no pacote inventory; aqui fica o
// cadastro direto (bootstrap e correções administrativas).
type StockItemUseCase struct {
	repo         repository.StockItemRepository
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	unitRepo     repository.UnitRepository
}

// NewStockItemUseCase constrói o caso de uso.
func NewStockItemUseCase(
	repo repository.StockItemRepository,
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	unitRepo repository.UnitRepository,
) *StockItemUseCase {
	return &StockItemUseCase{
		repo:         repo,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		unitRepo:     unitRepo,
	}
}

// Create cria um item de estoque. Um produto tem no máximo um item.
func (uc *StockItemUseCase) Create(in dto.CreateStockItemRequest) (*dto.StockItemResponse, error) {
	if in.ProductID == "" || in.CategoryID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.StatusNA
	}
	if !entity.ValidStatus(status) {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("produto %s: %w", in.ProductID, domain.ErrNotFound)
	}
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("categoria %s: %w", in.CategoryID, domain.ErrNotFound)
	}
	if in.UnitID != "" {
		unit, err := uc.unitRepo.GetByID(in.UnitID)
		if err != nil {
			return nil, err
		}
		if unit == nil {
			return nil, fmt.Errorf("unidade %s: %w", in.UnitID, domain.ErrNotFound)
		}
	}

	existing, err := uc.repo.GetByProduct(in.ProductID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	item := &entity.StockItem{
		ID:         uuid.New().String(),
		ProductID:  in.ProductID,
		CategoryID: in.CategoryID,
		UnitID:     in.UnitID,
		Quantity:   in.Quantity,
		StockMin:   in.StockMin,
		StockMax:   in.StockMax,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toStockItemResponse(item, product.Name, category.Name), nil
}

// GetByID obtém um item por ID.
func (uc *StockItemUseCase) GetByID(id string) (*dto.StockItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toStockItemResponse(item, "", ""), nil
}

// Update atualiza campos informados. Quantidade editada aqui NÃO passa pelo
// ledger: é um ajuste administrativo direto; prefira a contagem diária ou
// movimentos manuais para manter a trilha de auditoria.
func (uc *StockItemUseCase) Update(id string, in dto.UpdateStockItemRequest) (*dto.StockItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	if in.CategoryID != nil {
		category, err := uc.categoryRepo.GetByID(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, fmt.Errorf("categoria %s: %w", *in.CategoryID, domain.ErrNotFound)
		}
		item.CategoryID = *in.CategoryID
	}
	if in.UnitID != nil {
		if *in.UnitID != "" {
			unit, err := uc.unitRepo.GetByID(*in.UnitID)
			if err != nil {
				return nil, err
			}
			if unit == nil {
				return nil, fmt.Errorf("unidade %s: %w", *in.UnitID, domain.ErrNotFound)
			}
		}
		item.UnitID = *in.UnitID
	}
	if in.Quantity != nil {
		if in.Quantity.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		item.Quantity = *in.Quantity
	}
	if in.StockMin != nil {
		item.StockMin = *in.StockMin
	}
	if in.StockMax != nil {
		item.StockMax = *in.StockMax
	}
	if in.Status != nil {
		if !entity.ValidStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		item.Status = *in.Status
	}
	item.UpdatedAt = time.Now()

	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toStockItemResponse(item, "", ""), nil
}

// List lista itens com produto e categoria populados.
func (uc *StockItemUseCase) List(ctx context.Context, limit, offset int) (*dto.StockItemListResponse, error) {
	list, err := uc.repo.ListDetailed(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockItemResponse, 0, len(list))
	for _, d := range list {
		r := toStockItemResponse(&d.StockItem, d.ProductName, d.CategoryName)
		r.AvgPrice = d.AvgPrice
		r.UnitName = d.UnitName
		items = append(items, *r)
	}
	return &dto.StockItemListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete remove um item por ID. O ledger do produto permanece intacto.
func (uc *StockItemUseCase) Delete(id string) error {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toStockItemResponse(item *entity.StockItem, productName, categoryName string) *dto.StockItemResponse {
	return &dto.StockItemResponse{
		ID:           item.ID,
		ProductID:    item.ProductID,
		ProductName:  productName,
		CategoryID:   item.CategoryID,
		CategoryName: categoryName,
		UnitID:       item.UnitID,
		Quantity:     item.Quantity,
		StockMin:     item.StockMin,
		StockMax:     item.StockMax,
		Status:       item.Status,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
}
