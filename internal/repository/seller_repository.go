package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/distribution-api/internal/domain"
)

// SellerRepository maps onto the vendedor database routines.
type SellerRepository interface {
	Create(ctx context.Context, s *domain.Seller) error
	List(ctx context.Context) ([]domain.Seller, error)
	GetByID(ctx context.Context, code int) (*domain.Seller, error)
	Update(ctx context.Context, s *domain.Seller) error
}

type sellerRepository struct {
	pool *pgxpool.Pool
}

// NewSellerRepository returns a Postgres-backed implementation.
func NewSellerRepository(pool *pgxpool.Pool) SellerRepository {
	return &sellerRepository{pool: pool}
}

func (r *sellerRepository) Create(ctx context.Context, s *domain.Seller) error {
	const query = `SELECT agregar_vendedor($1, $2, $3, $4, $5, $6)`
	return r.pool.QueryRow(ctx, query,
		s.EmployeeCode,
		s.Name,
		s.LastName,
		s.DNI,
		s.CommissionPc,
		s.Status,
	).Scan(&s.SellerCode)
}

func (r *sellerRepository) List(ctx context.Context) ([]domain.Seller, error) {
	const query = `
        SELECT cod_vendedor, cod_empleado, nombre, apellido, dni, porcentaje_comision, estado
        FROM obtener_todos_los_vendedores()`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSellers(rows)
}

func (r *sellerRepository) GetByID(ctx context.Context, code int) (*domain.Seller, error) {
	const query = `
        SELECT cod_vendedor, cod_empleado, nombre, apellido, dni, porcentaje_comision, estado
        FROM obtener_vendedor_por_id($1)`
	var s domain.Seller
	if err := r.pool.QueryRow(ctx, query, code).Scan(
		&s.SellerCode,
		&s.EmployeeCode,
		&s.Name,
		&s.LastName,
		&s.DNI,
		&s.CommissionPc,
		&s.Status,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sellerRepository) Update(ctx context.Context, s *domain.Seller) error {
	const query = `SELECT actualizar_vendedor($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(ctx, query,
		s.SellerCode,
		s.Name,
		s.LastName,
		s.DNI,
		s.CommissionPc,
		s.Status,
	)
	return err
}

func scanSellers(rows pgx.Rows) ([]domain.Seller, error) {
	var sellers []domain.Seller
	for rows.Next() {
		var s domain.Seller
		if err := rows.Scan(
			&s.SellerCode,
			&s.EmployeeCode,
			&s.Name,
			&s.LastName,
			&s.DNI,
			&s.CommissionPc,
			&s.Status,
		); err != nil {
			return nil, err
		}
		sellers = append(sellers, s)
	}
	return sellers, rows.Err()
}
