package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/distribution-api/internal/domain"
)

const productCacheTTL = 5 * time.Minute

// ProductRepository maps onto the producto database routines.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) error
	List(ctx context.Context) ([]domain.Product, error)
	ListAvailable(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, code int) (*domain.Product, error)
	SearchByName(ctx context.Context, name string) ([]domain.Product, error)
	GetStock(ctx context.Context, code int) (int, error)
	Update(ctx context.Context, p *domain.Product) error
	MarkSoldOut(ctx context.Context, code int) error
	UpdateStock(ctx context.Context, code, stock int) error
}

type productRepository struct {
	pool  *pgxpool.Pool
	cache *redis.Client
}

// NewProductRepository returns a Postgres-backed implementation with an
// optional Redis read-through cache on per-id lookups.
func NewProductRepository(pool *pgxpool.Pool, cache *redis.Client) ProductRepository {
	return &productRepository{pool: pool, cache: cache}
}

func productCacheKey(code int) string {
	return fmt.Sprintf("producto:%d", code)
}

func (r *productRepository) Create(ctx context.Context, p *domain.Product) error {
	const query = `SELECT agregar_producto($1, $2, $3, $4, $5, $6, $7, $8)`
	return r.pool.QueryRow(ctx, query,
		p.Name,
		p.Description,
		p.PurchasePrice,
		p.SalePrice,
		p.Stock,
		p.CategoryCode,
		p.LineCode,
		p.Status,
	).Scan(&p.ProductCode)
}

func (r *productRepository) List(ctx context.Context) ([]domain.Product, error) {
	const query = `
        SELECT cod_producto, nombre, descripcion, precio_compra, precio_venta,
               stock, cod_categoria, cod_linea, estado
        FROM obtener_todos_los_productos()`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *productRepository) ListAvailable(ctx context.Context) ([]domain.Product, error) {
	const query = `
        SELECT cod_producto, nombre, descripcion, precio_compra, precio_venta,
               stock, cod_categoria, cod_linea, estado
        FROM obtener_productos_disponibles()`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *productRepository) GetByID(ctx context.Context, code int) (*domain.Product, error) {
	if r.cache != nil {
		if raw, err := r.cache.Get(ctx, productCacheKey(code)).Bytes(); err == nil {
			var cached domain.Product
			if err := json.Unmarshal(raw, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	const query = `
        SELECT cod_producto, nombre, descripcion, precio_compra, precio_venta,
               stock, cod_categoria, cod_linea, estado
        FROM obtener_producto_por_id($1)`
	var p domain.Product
	if err := r.pool.QueryRow(ctx, query, code).Scan(
		&p.ProductCode,
		&p.Name,
		&p.Description,
		&p.PurchasePrice,
		&p.SalePrice,
		&p.Stock,
		&p.CategoryCode,
		&p.LineCode,
		&p.Status,
	); err != nil {
		return nil, err
	}

	if r.cache != nil {
		if raw, err := json.Marshal(&p); err == nil {
			r.cache.Set(ctx, productCacheKey(code), raw, productCacheTTL)
		}
	}
	return &p, nil
}

func (r *productRepository) SearchByName(ctx context.Context, name string) ([]domain.Product, error) {
	const query = `
        SELECT cod_producto, nombre, descripcion, precio_compra, precio_venta,
               stock, cod_categoria, cod_linea, estado
        FROM buscar_producto_por_nombre($1)`
	rows, err := r.pool.Query(ctx, query, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *productRepository) GetStock(ctx context.Context, code int) (int, error) {
	const query = `SELECT obtener_stock_por_id($1)`
	var stock int
	if err := r.pool.QueryRow(ctx, query, code).Scan(&stock); err != nil {
		return 0, err
	}
	return stock, nil
}

func (r *productRepository) Update(ctx context.Context, p *domain.Product) error {
	const query = `SELECT actualizar_producto($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	if _, err := r.pool.Exec(ctx, query,
		p.ProductCode,
		p.Name,
		p.Description,
		p.PurchasePrice,
		p.SalePrice,
		p.Stock,
		p.CategoryCode,
		p.LineCode,
		p.Status,
	); err != nil {
		return err
	}
	r.invalidate(ctx, p.ProductCode)
	return nil
}

func (r *productRepository) MarkSoldOut(ctx context.Context, code int) error {
	const query = `SELECT actualizar_estado_agotado($1)`
	if _, err := r.pool.Exec(ctx, query, code); err != nil {
		return err
	}
	r.invalidate(ctx, code)
	return nil
}

func (r *productRepository) UpdateStock(ctx context.Context, code, stock int) error {
	const query = `SELECT actualizar_stock_producto($1, $2)`
	if _, err := r.pool.Exec(ctx, query, code, stock); err != nil {
		return err
	}
	r.invalidate(ctx, code)
	return nil
}

func (r *productRepository) invalidate(ctx context.Context, code int) {
	if r.cache != nil {
		r.cache.Del(ctx, productCacheKey(code))
	}
}

func scanProducts(rows pgx.Rows) ([]domain.Product, error) {
	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(
			&p.ProductCode,
			&p.Name,
			&p.Description,
			&p.PurchasePrice,
			&p.SalePrice,
			&p.Stock,
			&p.CategoryCode,
			&p.LineCode,
			&p.Status,
		); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
