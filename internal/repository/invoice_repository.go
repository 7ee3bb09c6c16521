package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/distribution-api/internal/domain"
)

// InvoiceRepository maps onto the factura and detalle_factura routines.
type InvoiceRepository interface {
	Create(ctx context.Context, inv *domain.Invoice) error
	List(ctx context.Context) ([]domain.Invoice, error)
	GetByID(ctx context.Context, code int) (*domain.Invoice, error)
}

type invoiceRepository struct {
	pool *pgxpool.Pool
}

// NewInvoiceRepository returns a Postgres-backed implementation.
func NewInvoiceRepository(pool *pgxpool.Pool) InvoiceRepository {
	return &invoiceRepository{pool: pool}
}

// Create registers the header and its lines in one transaction so a failed
// line insert never leaves a dangling header.
func (r *invoiceRepository) Create(ctx context.Context, inv *domain.Invoice) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	const headerQuery = `SELECT registrar_factura($1, $2, $3, $4)`
	if err := tx.QueryRow(ctx, headerQuery,
		inv.ClientCode,
		inv.SellerCode,
		inv.Total,
		inv.Status,
	).Scan(&inv.InvoiceCode); err != nil {
		return err
	}

	const lineQuery = `SELECT agregar_detalle_factura($1, $2, $3, $4, $5)`
	for i := range inv.Lines {
		line := &inv.Lines[i]
		line.InvoiceCode = inv.InvoiceCode
		line.LineNumber = i + 1
		if _, err := tx.Exec(ctx, lineQuery,
			line.InvoiceCode,
			line.ProductCode,
			line.Quantity,
			line.UnitPrice,
			line.Subtotal,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *invoiceRepository) List(ctx context.Context) ([]domain.Invoice, error) {
	const query = `
        SELECT cod_factura, cod_cliente, cod_vendedor, fecha_emision, total, estado
        FROM obtener_todas_las_facturas()`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []domain.Invoice
	for rows.Next() {
		var inv domain.Invoice
		if err := rows.Scan(
			&inv.InvoiceCode,
			&inv.ClientCode,
			&inv.SellerCode,
			&inv.IssuedAt,
			&inv.Total,
			&inv.Status,
		); err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}

func (r *invoiceRepository) GetByID(ctx context.Context, code int) (*domain.Invoice, error) {
	const headerQuery = `
        SELECT cod_factura, cod_cliente, cod_vendedor, fecha_emision, total, estado
        FROM obtener_factura_por_id($1)`
	var inv domain.Invoice
	if err := r.pool.QueryRow(ctx, headerQuery, code).Scan(
		&inv.InvoiceCode,
		&inv.ClientCode,
		&inv.SellerCode,
		&inv.IssuedAt,
		&inv.Total,
		&inv.Status,
	); err != nil {
		return nil, err
	}

	const linesQuery = `
        SELECT cod_factura, num_linea, cod_producto, cantidad, precio_unitario, subtotal
        FROM obtener_detalle_factura($1)`
	rows, err := r.pool.Query(ctx, linesQuery, code)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line domain.InvoiceLine
		if err := rows.Scan(
			&line.InvoiceCode,
			&line.LineNumber,
			&line.ProductCode,
			&line.Quantity,
			&line.UnitPrice,
			&line.Subtotal,
		); err != nil {
			return nil, err
		}
		inv.Lines = append(inv.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &inv, nil
}
