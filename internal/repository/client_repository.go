package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/distribution-api/internal/domain"
)

// ClientRepository maps onto the cliente database routines.
type ClientRepository interface {
	Create(ctx context.Context, c *domain.Client) error
	List(ctx context.Context) ([]domain.Client, error)
	GetByID(ctx context.Context, code int) (*domain.Client, error)
	Update(ctx context.Context, c *domain.Client) error
	Deactivate(ctx context.Context, code int) error
}

type clientRepository struct {
	pool *pgxpool.Pool
}

// NewClientRepository returns a Postgres-backed implementation.
func NewClientRepository(pool *pgxpool.Pool) ClientRepository {
	return &clientRepository{pool: pool}
}

func (r *clientRepository) Create(ctx context.Context, c *domain.Client) error {
	const query = `SELECT agregar_cliente($1, $2, $3, $4, $5, $6)`
	return r.pool.QueryRow(ctx, query,
		c.Name,
		c.LastName,
		c.DNI,
		c.Phone,
		c.Address,
		c.Status,
	).Scan(&c.ClientCode)
}

func (r *clientRepository) List(ctx context.Context) ([]domain.Client, error) {
	const query = `
        SELECT cod_cliente, cod_persona, nombre, apellido, dni, telefono, direccion, estado
        FROM obtener_todos_los_clientes()`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanClients(rows)
}

func (r *clientRepository) GetByID(ctx context.Context, code int) (*domain.Client, error) {
	const query = `
        SELECT cod_cliente, cod_persona, nombre, apellido, dni, telefono, direccion, estado
        FROM obtener_cliente_por_id($1)`
	var c domain.Client
	if err := r.pool.QueryRow(ctx, query, code).Scan(
		&c.ClientCode,
		&c.PersonCode,
		&c.Name,
		&c.LastName,
		&c.DNI,
		&c.Phone,
		&c.Address,
		&c.Status,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clientRepository) Update(ctx context.Context, c *domain.Client) error {
	const query = `SELECT actualizar_cliente($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(ctx, query,
		c.ClientCode,
		c.Name,
		c.LastName,
		c.DNI,
		c.Phone,
		c.Address,
		c.Status,
	)
	return err
}

func (r *clientRepository) Deactivate(ctx context.Context, code int) error {
	const query = `SELECT desactivar_cliente($1)`
	_, err := r.pool.Exec(ctx, query, code)
	return err
}

func scanClients(rows pgx.Rows) ([]domain.Client, error) {
	var clients []domain.Client
	for rows.Next() {
		var c domain.Client
		if err := rows.Scan(
			&c.ClientCode,
			&c.PersonCode,
			&c.Name,
			&c.LastName,
			&c.DNI,
			&c.Phone,
			&c.Address,
			&c.Status,
		); err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}
