package usecase

import (
	"sort"

	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/application/dto"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/domain/repository"
)

// menuPageSize limite alto o bastante para o cardápio inteiro numa chamada.
const menuPageSize = 500

// MenuUseCase monta o cardápio público: produtos visíveis agrupados por
// categoria, ordenados por nome.
type MenuUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewMenuUseCase constrói o caso de uso.
func NewMenuUseCase(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *MenuUseCase {
	return &MenuUseCase{productRepo: productRepo, categoryRepo: categoryRepo}
}

// Menu devolve o cardápio. Categorias sem produto visível ficam de fora.
func (uc *MenuUseCase) Menu() (*dto.MenuResponse, error) {
	categories, err := uc.categoryRepo.List(menuPageSize, 0)
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.List(menuPageSize, 0)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[string][]dto.MenuItemDTO)
	for _, p := range products {
		if !p.Visible {
			continue
		}
		byCategory[p.CategoryID] = append(byCategory[p.CategoryID], dto.MenuItemDTO{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
		})
	}

	out := &dto.MenuResponse{Categories: make([]dto.MenuCategoryDTO, 0, len(byCategory))}
	for _, c := range categories {
		items := byCategory[c.ID]
		if len(items) == 0 {
			continue
		}
		sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
		out.Categories = append(out.Categories, dto.MenuCategoryDTO{
			ID:    c.ID,
			Name:  c.Name,
			Items: items,
		})
	}
	sort.Slice(out.Categories, func(i, j int) bool { return out.Categories[i].Name < out.Categories[j].Name })
	return out, nil
}
