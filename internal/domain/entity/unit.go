package entity

import "time"

// Unit unidade de medida (kg, L, barril 30L, caixa...).
type Unit struct {
	ID           string
	Name         string
	Abbreviation string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
