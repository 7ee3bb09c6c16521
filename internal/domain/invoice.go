package domain

import "time"

// Invoice is a sales invoice header from the facturas table.
type Invoice struct {
	InvoiceCode int           `json:"cod_factura"`
	ClientCode  int           `json:"cod_cliente"`
	SellerCode  int           `json:"cod_vendedor"`
	IssuedAt    time.Time     `json:"fecha_emision"`
	Total       float64       `json:"total"`
	Status      string        `json:"estado"`
	Lines       []InvoiceLine `json:"detalle,omitempty"`
}

// InvoiceLine is one detalle_facturas row.
type InvoiceLine struct {
	InvoiceCode int     `json:"cod_factura"`
	LineNumber  int     `json:"num_linea"`
	ProductCode int     `json:"cod_producto"`
	Quantity    int     `json:"cantidad"`
	UnitPrice   float64 `json:"precio_unitario"`
	Subtotal    float64 `json:"subtotal"`
}
