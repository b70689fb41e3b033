package inventory

import (
	"context"

	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados a essa tx. Garante atomicidade do par
// movimento + atualização de quantidade da conciliação.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		itemRepo repository.StockItemRepository,
	) error) error
}
