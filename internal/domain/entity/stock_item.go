package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de nível de enchimento de um item de estoque. Relevante sobretudo
// para vasilhames parcialmente consumidos (barris de chope engatados);
// para os demais itens o valor costuma ficar em N/A.
const (
	StatusCheio = "Cheio"
	StatusMeio  = "Meio"
	StatusBaixo = "Baixo"
	StatusFinal = "Final"
	StatusVazio = "Vazio"
	StatusNA    = "N/A"
)

// ValidStatus informa se s é um status de enchimento conhecido.
func ValidStatus(s string) bool {
	switch s {
	case StatusCheio, StatusMeio, StatusBaixo, StatusFinal, StatusVazio, StatusNA:
		return true
	}
	return false
}

// StockItem representa o estado corrente de um item rastreável de estoque.
// A identidade efetiva é a combinação produto+categoria+unidade; o histórico
// não fica aqui, fica no ledger de StockMovement.
type StockItem struct {
	ID         string
	ProductID  string
	CategoryID string
	UnitID     string // opcional
	Quantity   decimal.Decimal
	StockMin   decimal.Decimal // limiar consultivo, não imposto
	StockMax   decimal.Decimal // idem
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
