package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/application/dto"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/domain"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/domain/entity"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para produtos. A quantidade em estoque
// não mora aqui: é manejada via itens de estoque e movimentos.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	supplierRepo repository.SupplierRepository
	unitRepo     repository.UnitRepository
}

// NewProductUseCase constrói o caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	supplierRepo repository.SupplierRepository,
	unitRepo repository.UnitRepository,
) *ProductUseCase {
	return &ProductUseCase{
		repo:         repo,
		categoryRepo: categoryRepo,
		supplierRepo: supplierRepo,
		unitRepo:     unitRepo,
	}
}

// checkRefs valida que categoria, fornecedor e unidade referenciados existem.
// O erro indica qual campo falhou (errors.Is(err, domain.ErrNotFound)).
func (uc *ProductUseCase) checkRefs(categoryID, supplierID, unitID string) error {
	if categoryID != "" {
		cat, err := uc.categoryRepo.GetByID(categoryID)
		if err != nil {
			return err
		}
		if cat == nil {
			return fmt.Errorf("categoria %s: %w", categoryID, domain.ErrNotFound)
		}
	}
	if supplierID != "" {
		sup, err := uc.supplierRepo.GetByID(supplierID)
		if err != nil {
			return err
		}
		if sup == nil {
			return fmt.Errorf("fornecedor %s: %w", supplierID, domain.ErrNotFound)
		}
	}
	if unitID != "" {
		unit, err := uc.unitRepo.GetByID(unitID)
		if err != nil {
			return err
		}
		if unit == nil {
			return fmt.Errorf("unidade %s: %w", unitID, domain.ErrNotFound)
		}
	}
	return nil
}

// Create cria um produto novo. Nome duplicado é rejeitado.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.CategoryID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.AvgPrice.IsNegative() || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if err := uc.checkRefs(in.CategoryID, in.SupplierID, in.UnitID); err != nil {
		return nil, err
	}

	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		AvgPrice:    in.AvgPrice,
		Price:       in.Price,
		CategoryID:  in.CategoryID,
		SupplierID:  in.SupplierID,
		UnitID:      in.UnitID,
		Visible:     in.Visible,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtém um produto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update atualiza campos informados de um produto.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	var categoryID, supplierID, unitID string
	if in.CategoryID != nil {
		categoryID = *in.CategoryID
	}
	if in.SupplierID != nil {
		supplierID = *in.SupplierID
	}
	if in.UnitID != nil {
		unitID = *in.UnitID
	}
	if err := uc.checkRefs(categoryID, supplierID, unitID); err != nil {
		return nil, err
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.AvgPrice != nil {
		if in.AvgPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.AvgPrice = *in.AvgPrice
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.CategoryID != nil {
		product.CategoryID = *in.CategoryID
	}
	if in.SupplierID != nil {
		product.SupplierID = *in.SupplierID
	}
	if in.UnitID != nil {
		product.UnitID = *in.UnitID
	}
	if in.Visible != nil {
		product.Visible = *in.Visible
	}
	product.UpdatedAt = time.Now()

	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista produtos com paginação.
func (uc *ProductUseCase) List(limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete remove um produto por ID.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		AvgPrice:    p.AvgPrice,
		Price:       p.Price,
		CategoryID:  p.CategoryID,
		SupplierID:  p.SupplierID,
		UnitID:      p.UnitID,
		Visible:     p.Visible,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
