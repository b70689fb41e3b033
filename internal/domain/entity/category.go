package entity

import "time"

// Category representa uma categoria de produtos. O nome é o que decide a
// elegibilidade à tabela de pesos da valorização (categorias de chope
// engatado).
type Category struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
