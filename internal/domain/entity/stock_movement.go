package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimento do ledger.
const (
	MovementEntrada = "entrada"
	MovementSaida   = "saida"
)

// ValidMovementType informa se t é um tipo de movimento conhecido.
func ValidMovementType(t string) bool {
	return t == MovementEntrada || t == MovementSaida
}

// StockMovement é um lançamento imutável do ledger de estoque. Uma vez
// gravado, nunca é alterado ou removido pelo fluxo normal: é a trilha de
// auditoria das quantidades.
type StockMovement struct {
	ID        string
	ProductID string
	Quantity  decimal.Decimal // magnitude positiva do delta
	Type      string          // entrada | saida
	Reason    string          // ex.: "Contagem diária"
	Date      time.Time       // momento do movimento (default: criação)
	UserID    string          // conta que originou o movimento (opcional)
	CreatedAt time.Time
}
