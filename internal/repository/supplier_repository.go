package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/distribution-api/internal/domain"
)

// SupplierRepository maps onto the proveedor database routines.
type SupplierRepository interface {
	Create(ctx context.Context, s *domain.Supplier) error
	List(ctx context.Context) ([]domain.Supplier, error)
	GetByID(ctx context.Context, code int) (*domain.Supplier, error)
	Update(ctx context.Context, s *domain.Supplier) error
	Deactivate(ctx context.Context, code int) error
}

type supplierRepository struct {
	pool *pgxpool.Pool
}

// NewSupplierRepository returns a Postgres-backed implementation.
func NewSupplierRepository(pool *pgxpool.Pool) SupplierRepository {
	return &supplierRepository{pool: pool}
}

func (r *supplierRepository) Create(ctx context.Context, s *domain.Supplier) error {
	const query = `SELECT agregar_proveedor($1, $2, $3, $4, $5)`
	return r.pool.QueryRow(ctx, query,
		s.CompanyName,
		s.RUC,
		s.Phone,
		s.Address,
		s.Status,
	).Scan(&s.SupplierCode)
}

func (r *supplierRepository) List(ctx context.Context) ([]domain.Supplier, error) {
	const query = `
        SELECT cod_proveedor, razon_social, ruc, telefono, direccion, estado
        FROM obtener_todos_los_proveedores()`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSuppliers(rows)
}

func (r *supplierRepository) GetByID(ctx context.Context, code int) (*domain.Supplier, error) {
	const query = `
        SELECT cod_proveedor, razon_social, ruc, telefono, direccion, estado
        FROM obtener_proveedor_por_id($1)`
	var s domain.Supplier
	if err := r.pool.QueryRow(ctx, query, code).Scan(
		&s.SupplierCode,
		&s.CompanyName,
		&s.RUC,
		&s.Phone,
		&s.Address,
		&s.Status,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *supplierRepository) Update(ctx context.Context, s *domain.Supplier) error {
	const query = `SELECT actualizar_proveedor($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(ctx, query,
		s.SupplierCode,
		s.CompanyName,
		s.RUC,
		s.Phone,
		s.Address,
		s.Status,
	)
	return err
}

func (r *supplierRepository) Deactivate(ctx context.Context, code int) error {
	const query = `SELECT desactivar_proveedor($1)`
	_, err := r.pool.Exec(ctx, query, code)
	return err
}

func scanSuppliers(rows pgx.Rows) ([]domain.Supplier, error) {
	var suppliers []domain.Supplier
	for rows.Next() {
		var s domain.Supplier
		if err := rows.Scan(
			&s.SupplierCode,
			&s.CompanyName,
			&s.RUC,
			&s.Phone,
			&s.Address,
			&s.Status,
		); err != nil {
			return nil, err
		}
		suppliers = append(suppliers, s)
	}
	return suppliers, rows.Err()
}
