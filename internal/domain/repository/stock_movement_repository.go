package repository

import (
	"time"

	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/domain/entity"
)

// MovementDetail movimento com o nome do produto populado, para o histórico.
type MovementDetail struct {
	entity.StockMovement
	ProductName string
}

// StockMovementRepository define a porta de persistência do ledger.
// O ledger é append-only: não há Update nem Delete.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id string) (*entity.StockMovement, error)
	// List filtra por produto (opcional) e intervalo de datas (opcionais),
	// ordenado por data decrescente.
	List(productID string, from, to *time.Time, limit, offset int) ([]MovementDetail, error)
}
