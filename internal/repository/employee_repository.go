package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/distribution-api/internal/domain"
)

// EmployeeRepository is the credential store consumed by the auth core.
type EmployeeRepository interface {
	FindByDNI(ctx context.Context, dni string) (*domain.Employee, error)
}

type employeeRepository struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository returns a Postgres-backed implementation.
func NewEmployeeRepository(pool *pgxpool.Pool) EmployeeRepository {
	return &employeeRepository{pool: pool}
}

func (r *employeeRepository) FindByDNI(ctx context.Context, dni string) (*domain.Employee, error) {
	const query = `
        SELECT cod_empleado, dni, nombre, contrasena, estado, es_administrador
        FROM empleados WHERE dni=$1`

	var emp domain.Employee
	if err := r.pool.QueryRow(ctx, query, dni).Scan(
		&emp.EmployeeCode,
		&emp.DNI,
		&emp.Name,
		&emp.Secret,
		&emp.Status,
		&emp.IsAdmin,
	); err != nil {
		return nil, err
	}
	return &emp, nil
}
