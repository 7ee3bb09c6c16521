package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/distribution-api/internal/domain"
)

// AdvisorRepository maps onto the asesor database routines.
type AdvisorRepository interface {
	Create(ctx context.Context, a *domain.Advisor) error
	List(ctx context.Context) ([]domain.Advisor, error)
	GetByID(ctx context.Context, code int) (*domain.Advisor, error)
	Update(ctx context.Context, a *domain.Advisor) error
	ListSpecialties(ctx context.Context, advisorCode int) ([]domain.AdvisorSpecialty, error)
}

type advisorRepository struct {
	pool *pgxpool.Pool
}

// NewAdvisorRepository returns a Postgres-backed implementation.
func NewAdvisorRepository(pool *pgxpool.Pool) AdvisorRepository {
	return &advisorRepository{pool: pool}
}

func (r *advisorRepository) Create(ctx context.Context, a *domain.Advisor) error {
	const query = `SELECT agregar_asesor($1, $2, $3, $4, $5)`
	return r.pool.QueryRow(ctx, query,
		a.EmployeeCode,
		a.Name,
		a.LastName,
		a.DNI,
		a.Status,
	).Scan(&a.AdvisorCode)
}

func (r *advisorRepository) List(ctx context.Context) ([]domain.Advisor, error) {
	const query = `
        SELECT cod_asesor, cod_empleado, nombre, apellido, dni, estado
        FROM obtener_todos_los_asesores()`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAdvisors(rows)
}

func (r *advisorRepository) GetByID(ctx context.Context, code int) (*domain.Advisor, error) {
	const query = `
        SELECT cod_asesor, cod_empleado, nombre, apellido, dni, estado
        FROM obtener_asesor_por_id($1)`
	var a domain.Advisor
	if err := r.pool.QueryRow(ctx, query, code).Scan(
		&a.AdvisorCode,
		&a.EmployeeCode,
		&a.Name,
		&a.LastName,
		&a.DNI,
		&a.Status,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *advisorRepository) Update(ctx context.Context, a *domain.Advisor) error {
	const query = `SELECT actualizar_asesor($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(ctx, query,
		a.AdvisorCode,
		a.Name,
		a.LastName,
		a.DNI,
		a.Status,
	)
	return err
}

func (r *advisorRepository) ListSpecialties(ctx context.Context, advisorCode int) ([]domain.AdvisorSpecialty, error) {
	const query = `
        SELECT cod_asesor, cod_especialidad, especialidad
        FROM obtener_especialidades_asesor($1)`
	rows, err := r.pool.Query(ctx, query, advisorCode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var specialties []domain.AdvisorSpecialty
	for rows.Next() {
		var s domain.AdvisorSpecialty
		if err := rows.Scan(&s.AdvisorCode, &s.SpecialtyCode, &s.SpecialtyName); err != nil {
			return nil, err
		}
		specialties = append(specialties, s)
	}
	return specialties, rows.Err()
}

func scanAdvisors(rows pgx.Rows) ([]domain.Advisor, error) {
	var advisors []domain.Advisor
	for rows.Next() {
		var a domain.Advisor
		if err := rows.Scan(
			&a.AdvisorCode,
			&a.EmployeeCode,
			&a.Name,
			&a.LastName,
			&a.DNI,
			&a.Status,
		); err != nil {
			return nil, err
		}
		advisors = append(advisors, a)
	}
	return advisors, rows.Err()
}
