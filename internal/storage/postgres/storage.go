package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/tonstore/storefront/internal/domain/errors"
	"github.com/tonstore/storefront/internal/domain/model"
	"github.com/tonstore/storefront/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool the storage relies on, kept as
// an interface so tests can substitute a mock pool.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type productRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Products() repository.ProductRepository {
	return &productRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS products (
            id SERIAL PRIMARY KEY,
            product_id TEXT UNIQUE NOT NULL,
            model TEXT NOT NULL,
            price BIGINT NOT NULL DEFAULT 0,
            currency TEXT NOT NULL DEFAULT 'RUB',
            old_price TEXT NOT NULL DEFAULT '',
            category TEXT NOT NULL DEFAULT '',
            current_color TEXT NOT NULL DEFAULT '',
            current_memory TEXT NOT NULL DEFAULT '',
            image_url TEXT NOT NULL DEFAULT '',
            product_url TEXT NOT NULL DEFAULT '',
            is_featured BOOLEAN NOT NULL DEFAULT FALSE,
            display_order INTEGER NOT NULL DEFAULT 0,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS product_colors (
            id SERIAL PRIMARY KEY,
            product_id TEXT NOT NULL,
            color_name TEXT NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS product_memory (
            id SERIAL PRIMARY KEY,
            product_id TEXT NOT NULL,
            memory_size TEXT NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            price BIGINT NOT NULL,
            currency TEXT NOT NULL,
            status TEXT NOT NULL DEFAULT 'new',
            charge_code TEXT,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS order_items (
            id SERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL REFERENCES orders(id),
            product_id TEXT NOT NULL,
            quantity INTEGER NOT NULL,
            unit_price BIGINT NOT NULL
        )`,
		`CREATE INDEX IF NOT EXISTS idx_products_category ON products(category)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_charge_code ON orders(charge_code)`,
		`CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- ProductRepository implementation ---

const productColumns = `p.id, p.product_id, p.model, p.price, p.currency, p.old_price,
           p.category, p.current_color, p.current_memory, p.image_url, p.product_url,
           p.is_featured, p.display_order, p.created_at,
           COALESCE(ARRAY_AGG(DISTINCT pc.color_name) FILTER (WHERE pc.color_name IS NOT NULL), '{}'),
           COALESCE(ARRAY_AGG(DISTINCT pm.memory_size) FILTER (WHERE pm.memory_size IS NOT NULL), '{}')`

func scanProduct(row pgx.Row) (*model.Product, error) {
	var p model.Product
	err := row.Scan(&p.ID, &p.ProductID, &p.Model, &p.Price, &p.Currency, &p.OldPrice,
		&p.Category, &p.CurrentColor, &p.Memory, &p.ImageURL, &p.ProductURL,
		&p.IsFeatured, &p.DisplayOrder, &p.CreatedAt, &p.Colors, &p.MemorySizes)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + productColumns + `
                    FROM products p
                    LEFT JOIN product_colors pc ON p.product_id = pc.product_id
                    LEFT JOIN product_memory pm ON p.product_id = pm.product_id`)

	var (
		conditions []string
		params     []any
	)

	if filter.Category != "" && filter.Category != "all" {
		params = append(params, filter.Category)
		conditions = append(conditions, fmt.Sprintf("p.category = $%d", len(params)))
	}

	if filter.Search != "" {
		params = append(params, "%"+filter.Search+"%")
		idx := len(params)
		conditions = append(conditions, fmt.Sprintf("(p.model ILIKE $%d OR p.current_color ILIKE $%d)", idx, idx))
	}

	if len(conditions) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}

	sb.WriteString(" GROUP BY p.id")

	switch filter.Sort {
	case model.SortPriceAsc:
		sb.WriteString(" ORDER BY p.price ASC")
	case model.SortPriceDesc:
		sb.WriteString(" ORDER BY p.price DESC")
	case model.SortName:
		sb.WriteString(" ORDER BY p.model ASC")
	default:
		sb.WriteString(" ORDER BY p.display_order ASC")
	}

	rows, err := r.storage.pool.Query(ctx, sb.String(), params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *productRepository) GetByID(ctx context.Context, productID string) (*model.Product, error) {
	query := `SELECT ` + productColumns + `
              FROM products p
              LEFT JOIN product_colors pc ON p.product_id = pc.product_id
              LEFT JOIN product_memory pm ON p.product_id = pm.product_id
              WHERE p.product_id = $1
              GROUP BY p.id`

	p, err := scanProduct(r.storage.pool.QueryRow(ctx, query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *productRepository) Categories(ctx context.Context) ([]model.Category, error) {
	const query = `SELECT category, COUNT(*) AS count
                   FROM products
                   GROUP BY category
                   ORDER BY count DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.Name, &c.Count); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *productRepository) Featured(ctx context.Context, limit int) ([]model.Product, error) {
	query := `SELECT ` + productColumns + `
              FROM products p
              LEFT JOIN product_colors pc ON p.product_id = pc.product_id
              LEFT JOIN product_memory pm ON p.product_id = pm.product_id
              WHERE p.is_featured
              GROUP BY p.id
              ORDER BY p.price DESC
              LIMIT $1`
	rows, err := r.storage.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- OrderRepository implementation ---

func (r *orderRepository) Create(ctx context.Context, items []model.OrderItem, total int64, currency string) (*model.Order, error) {
	order := &model.Order{
		Items:    items,
		Price:    total,
		Currency: currency,
		Status:   model.OrderStatusNew,
	}

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insertOrder = `INSERT INTO orders (price, currency, status) VALUES ($1, $2, $3)
                             RETURNING id, created_at, updated_at`
		if err := tx.QueryRow(ctx, insertOrder, total, currency, model.OrderStatusNew).
			Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt); err != nil {
			return err
		}

		const insertItem = `INSERT INTO order_items (order_id, product_id, quantity, unit_price)
                            VALUES ($1, $2, $3, $4)`
		for _, item := range items {
			if _, err := tx.Exec(ctx, insertItem, order.ID, item.ProductID, item.Quantity, item.UnitPrice); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	const orderQuery = `SELECT id, price, currency, status, charge_code, created_at, updated_at
                        FROM orders WHERE id=$1`
	var o model.Order
	err := r.storage.pool.QueryRow(ctx, orderQuery, id).
		Scan(&o.ID, &o.Price, &o.Currency, &o.Status, &o.ChargeCode, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	const itemsQuery = `SELECT product_id, quantity, unit_price
                        FROM order_items WHERE order_id=$1 ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, itemsQuery, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item model.OrderItem
		if err := rows.Scan(&item.ProductID, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, err
		}
		o.Items = append(o.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) AttachCharge(ctx context.Context, id int64, chargeCode string) error {
	const query = `UPDATE orders SET charge_code=$1, status=$2, updated_at=NOW()
                   WHERE id=$3 AND status=$4 AND charge_code IS NULL`
	tag, err := r.storage.pool.Exec(ctx, query, chargeCode, model.OrderStatusPending, id, model.OrderStatusNew)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.currentStatus(ctx, id); err != nil {
			return err
		}
		return domainErrors.ErrInvalidTransition
	}
	return nil
}

// Finalize applies a terminal status only while the order is pending, so a
// redelivered webhook can never regress a settled order. Re-applying the
// status the order already reached is treated as successful redelivery.
func (r *orderRepository) Finalize(ctx context.Context, id int64, status model.OrderStatus) error {
	if !status.IsTerminal() {
		return domainErrors.ErrInvalidTransition
	}

	const query = `UPDATE orders SET status=$1, updated_at=NOW()
                   WHERE id=$2 AND status=$3`
	tag, err := r.storage.pool.Exec(ctx, query, status, id, model.OrderStatusPending)
	if err != nil {
		return err
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	current, err := r.currentStatus(ctx, id)
	if err != nil {
		return err
	}
	if current == status {
		return nil
	}
	return domainErrors.ErrInvalidTransition
}

func (r *orderRepository) currentStatus(ctx context.Context, id int64) (model.OrderStatus, error) {
	const query = `SELECT status FROM orders WHERE id=$1`
	var status model.OrderStatus
	if err := r.storage.pool.QueryRow(ctx, query, id).Scan(&status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domainErrors.ErrNotFound
		}
		return "", err
	}
	return status, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
