package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/domain"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/domain/entity"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/domain/repository"
)

var _ repository.StockItemRepository = (*StockItemRepo)(nil)

// StockItemRepo implementação de StockItemRepository sobre PostgreSQL
// (usável com pool ou tx).
type StockItemRepo struct {
	q Querier
}

// NewStockItemRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewStockItemRepository(q Querier) *StockItemRepo {
	return &StockItemRepo{q: q}
}

const stockItemColumns = `id, product_id, category_id, unit_id, quantity, stock_min, stock_max, status, created_at, updated_at`

func scanStockItem(row pgx.Row) (*entity.StockItem, error) {
	var it entity.StockItem
	err := row.Scan(
		&it.ID, &it.ProductID, &it.CategoryID, &it.UnitID,
		&it.Quantity, &it.StockMin, &it.StockMax, &it.Status,
		&it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

// Create persiste um item de estoque novo. Produto duplicado viola o
// constraint único de product_id.
func (r *StockItemRepo) Create(item *entity.StockItem) error {
	query := `
		INSERT INTO stock_items (` + stockItemColumns + `)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.ProductID, item.CategoryID, item.UnitID,
		item.Quantity, item.StockMin, item.StockMax, item.Status,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert stock item: %w", err)
	}
	return nil
}

// GetByID obtém um item por ID.
func (r *StockItemRepo) GetByID(id string) (*entity.StockItem, error) {
	query := `
		SELECT id, product_id, category_id, COALESCE(unit_id::text, ''), quantity, stock_min, stock_max, status, created_at, updated_at
		FROM stock_items WHERE id = $1`
	item, err := scanStockItem(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock item: %w", err)
	}
	return item, nil
}

// GetByProduct obtém o item de estoque de um produto.
func (r *StockItemRepo) GetByProduct(productID string) (*entity.StockItem, error) {
	query := `
		SELECT id, product_id, category_id, COALESCE(unit_id::text, ''), quantity, stock_min, stock_max, status, created_at, updated_at
		FROM stock_items WHERE product_id = $1`
	item, err := scanStockItem(r.q.QueryRow(context.Background(), query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock item by product: %w", err)
	}
	return item, nil
}

// GetByProductForUpdate obtém o item e trava a fila (SELECT FOR UPDATE).
// Usar dentro de transação: é o que serializa conciliações concorrentes do
// mesmo produto.
func (r *StockItemRepo) GetByProductForUpdate(productID string) (*entity.StockItem, error) {
	query := `
		SELECT id, product_id, category_id, COALESCE(unit_id::text, ''), quantity, stock_min, stock_max, status, created_at, updated_at
		FROM stock_items WHERE product_id = $1
		FOR UPDATE`
	item, err := scanStockItem(r.q.QueryRow(context.Background(), query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock item for update: %w", err)
	}
	return item, nil
}

// Update sobrescreve os campos mutáveis de um item.
func (r *StockItemRepo) Update(item *entity.StockItem) error {
	query := `
		UPDATE stock_items
		SET category_id = $2, unit_id = NULLIF($3, ''), quantity = $4, stock_min = $5, stock_max = $6, status = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.CategoryID, item.UnitID,
		item.Quantity, item.StockMin, item.StockMax, item.Status, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update stock item: %w", err)
	}
	return nil
}

// Delete remove um item por ID. O ledger do produto não é tocado.
func (r *StockItemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stock_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock item: %w", err)
	}
	return nil
}

// ListDetailed lista itens com produto, categoria e unidade populados.
func (r *StockItemRepo) ListDetailed(ctx context.Context, limit, offset int) ([]repository.StockItemDetail, error) {
	query := `
		SELECT si.id, si.product_id, si.category_id, COALESCE(si.unit_id::text, ''),
		       si.quantity, si.stock_min, si.stock_max, si.status, si.created_at, si.updated_at,
		       p.name, p.avg_price, c.name, COALESCE(u.name, '')
		FROM stock_items si
		JOIN products p ON p.id = si.product_id
		JOIN categories c ON c.id = si.category_id
		LEFT JOIN units u ON u.id = si.unit_id
		ORDER BY p.name
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock items: %w", err)
	}
	defer rows.Close()

	var list []repository.StockItemDetail
	for rows.Next() {
		var d repository.StockItemDetail
		if err := rows.Scan(
			&d.ID, &d.ProductID, &d.CategoryID, &d.UnitID,
			&d.Quantity, &d.StockMin, &d.StockMax, &d.Status, &d.CreatedAt, &d.UpdatedAt,
			&d.ProductName, &d.AvgPrice, &d.CategoryName, &d.UnitName,
		); err != nil {
			return nil, fmt.Errorf("scan stock item: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// ListForValuation devolve as linhas do motor de CMV: itens com created_at
// dentro de [start, end], já com preço médio e nome da categoria.
func (r *StockItemRepo) ListForValuation(ctx context.Context, start, end time.Time) ([]repository.ValuationRow, error) {
	query := `
		SELECT si.product_id, p.name, p.avg_price, c.name, si.status, si.quantity, si.created_at
		FROM stock_items si
		JOIN products p ON p.id = si.product_id
		JOIN categories c ON c.id = si.category_id
		WHERE si.created_at >= $1 AND si.created_at <= $2
		ORDER BY c.name, p.name`
	rows, err := r.q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("list for valuation: %w", err)
	}
	defer rows.Close()

	var list []repository.ValuationRow
	for rows.Next() {
		var v repository.ValuationRow
		if err := rows.Scan(&v.ProductID, &v.ProductName, &v.AvgPrice, &v.CategoryName, &v.Status, &v.Quantity, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan valuation row: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}
