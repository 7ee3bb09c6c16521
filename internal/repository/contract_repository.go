package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/distribution-api/internal/domain"
)

// ContractRepository maps onto the contrato database routines.
type ContractRepository interface {
	Create(ctx context.Context, c *domain.Contract) error
	List(ctx context.Context) ([]domain.Contract, error)
	GetByID(ctx context.Context, code int) (*domain.Contract, error)
	UpdateStatus(ctx context.Context, code int, status string) error
}

type contractRepository struct {
	pool *pgxpool.Pool
}

// NewContractRepository returns a Postgres-backed implementation.
func NewContractRepository(pool *pgxpool.Pool) ContractRepository {
	return &contractRepository{pool: pool}
}

func (r *contractRepository) Create(ctx context.Context, c *domain.Contract) error {
	const query = `SELECT agregar_contrato($1, $2, $3, $4, $5, $6)`
	return r.pool.QueryRow(ctx, query,
		c.SupplierCode,
		c.AdvisorCode,
		c.StartDate,
		c.EndDate,
		c.Amount,
		c.Status,
	).Scan(&c.ContractCode)
}

func (r *contractRepository) List(ctx context.Context) ([]domain.Contract, error) {
	const query = `
        SELECT cod_contrato, cod_proveedor, cod_asesor, fecha_inicio, fecha_fin, monto, estado
        FROM obtener_todos_los_contratos()`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanContracts(rows)
}

func (r *contractRepository) GetByID(ctx context.Context, code int) (*domain.Contract, error) {
	const query = `
        SELECT cod_contrato, cod_proveedor, cod_asesor, fecha_inicio, fecha_fin, monto, estado
        FROM obtener_contrato_por_id($1)`
	var c domain.Contract
	if err := r.pool.QueryRow(ctx, query, code).Scan(
		&c.ContractCode,
		&c.SupplierCode,
		&c.AdvisorCode,
		&c.StartDate,
		&c.EndDate,
		&c.Amount,
		&c.Status,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *contractRepository) UpdateStatus(ctx context.Context, code int, status string) error {
	const query = `SELECT actualizar_estado_contrato($1, $2)`
	_, err := r.pool.Exec(ctx, query, code, status)
	return err
}

func scanContracts(rows pgx.Rows) ([]domain.Contract, error) {
	var contracts []domain.Contract
	for rows.Next() {
		var c domain.Contract
		if err := rows.Scan(
			&c.ContractCode,
			&c.SupplierCode,
			&c.AdvisorCode,
			&c.StartDate,
			&c.EndDate,
			&c.Amount,
			&c.Status,
		); err != nil {
			return nil, err
		}
		contracts = append(contracts, c)
	}
	return contracts, rows.Err()
}
