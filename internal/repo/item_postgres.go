package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/stocktrack/inventory-api/internal/models"
)

const itemColumns = `id, name, category, quantity, unit, expiration_date, supplier, price, sku, reorder_level, batch_number`

// PostgresItemRepository stores items in the products table. Every mutation is
// a single statement, so each one commits or rolls back on its own; no
// long-lived session state is shared between requests.
type PostgresItemRepository struct {
	db *sql.DB
}

func NewPostgresItemRepository(db *sql.DB) *PostgresItemRepository {
	return &PostgresItemRepository{db: db}
}

func (r *PostgresItemRepository) Create(ctx context.Context, item models.Item) (models.Item, error) {
	query := `INSERT INTO products (` + itemColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query,
		item.ID, item.Name, item.Category, item.Quantity, item.Unit,
		item.ExpirationDate, item.Supplier, item.Price, item.SKU,
		item.ReorderLevel, item.BatchNumber)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return models.Item{}, ErrDuplicateID
		}
		return models.Item{}, err
	}
	return item, nil
}

func (r *PostgresItemRepository) GetAll(ctx context.Context) ([]models.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM products ORDER BY id`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresItemRepository) GetByID(ctx context.Context, id string) (models.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM products WHERE id = $1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	item, err := scanItem(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Item{}, ErrItemNotFound
	}
	return item, err
}

func (r *PostgresItemRepository) Update(ctx context.Context, id string, patch models.ItemPatch) (models.Item, error) {
	if patch.Empty() {
		return r.GetByID(ctx, id)
	}

	assignments, args, argIdx := patchAssignments(patch)
	query := fmt.Sprintf(`UPDATE products SET %s WHERE id = $%d RETURNING %s`, assignments, argIdx, itemColumns)
	args = append(args, id)

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	item, err := scanItem(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Item{}, ErrItemNotFound
	}
	return item, err
}

func (r *PostgresItemRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM products WHERE id = $1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *PostgresItemRepository) Filter(ctx context.Context, f ItemFilter) ([]models.Item, int, error) {
	conditions, args, argIdx := filterConditions(f)

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var totalCount int
	countQuery := `SELECT COUNT(*) FROM products WHERE 1=1` + conditions
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + itemColumns + ` FROM products WHERE 1=1` + conditions + ` ORDER BY id`
	if f.Limit != nil && *f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)
		args = append(args, *f.Limit)
		argIdx++
	}
	if f.Offset != nil && *f.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIdx)
		args = append(args, *f.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, item)
	}
	return items, totalCount, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (models.Item, error) {
	var item models.Item
	err := row.Scan(&item.ID, &item.Name, &item.Category, &item.Quantity,
		&item.Unit, &item.ExpirationDate, &item.Supplier, &item.Price,
		&item.SKU, &item.ReorderLevel, &item.BatchNumber)
	return item, err
}

func patchAssignments(p models.ItemPatch) (string, []any, int) {
	assignments := ""
	argIdx := 1
	args := []any{}

	add := func(column string, value any) {
		if assignments != "" {
			assignments += ", "
		}
		assignments += fmt.Sprintf("%s = $%d", column, argIdx)
		args = append(args, value)
		argIdx++
	}

	if p.Name != nil {
		add("name", *p.Name)
	}
	if p.Category != nil {
		add("category", *p.Category)
	}
	if p.Quantity != nil {
		add("quantity", *p.Quantity)
	}
	if p.Unit != nil {
		add("unit", *p.Unit)
	}
	if p.ExpirationDate != nil {
		add("expiration_date", *p.ExpirationDate)
	}
	if p.Supplier != nil {
		add("supplier", *p.Supplier)
	}
	if p.Price != nil {
		add("price", *p.Price)
	}
	if p.SKU != nil {
		add("sku", *p.SKU)
	}
	if p.ReorderLevel != nil {
		add("reorder_level", *p.ReorderLevel)
	}
	if p.BatchNumber != nil {
		add("batch_number", *p.BatchNumber)
	}

	return assignments, args, argIdx
}

func filterConditions(f ItemFilter) (string, []any, int) {
	query := ""
	argIdx := 1
	args := []any{}

	if f.Name != "" {
		query += fmt.Sprintf(" AND name ILIKE $%d", argIdx)
		args = append(args, "%"+f.Name+"%")
		argIdx++
	}
	if f.Category != "" {
		query += fmt.Sprintf(" AND category = $%d", argIdx)
		args = append(args, f.Category)
		argIdx++
	}
	if f.MinQty != nil {
		query += fmt.Sprintf(" AND quantity >= $%d", argIdx)
		args = append(args, *f.MinQty)
		argIdx++
	}
	if f.MaxQty != nil {
		query += fmt.Sprintf(" AND quantity <= $%d", argIdx)
		args = append(args, *f.MaxQty)
		argIdx++
	}
	if f.MinPrice != nil {
		query += fmt.Sprintf(" AND price >= $%d", argIdx)
		args = append(args, *f.MinPrice)
		argIdx++
	}
	if f.MaxPrice != nil {
		query += fmt.Sprintf(" AND price <= $%d", argIdx)
		args = append(args, *f.MaxPrice)
		argIdx++
	}

	return query, args, argIdx
}
