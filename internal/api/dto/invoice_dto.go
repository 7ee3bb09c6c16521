package dto

// InvoiceRequest payload for create: header fields plus line items.
type InvoiceRequest struct {
	ClientCode int                  `json:"cod_cliente"`
	SellerCode int                  `json:"cod_vendedor"`
	Total      float64              `json:"total"`
	Status     string               `json:"estado"`
	Lines      []InvoiceLineRequest `json:"detalle"`
}

// InvoiceLineRequest is one detail row of an invoice.
type InvoiceLineRequest struct {
	ProductCode int     `json:"cod_producto"`
	Quantity    int     `json:"cantidad"`
	UnitPrice   float64 `json:"precio_unitario"`
	Subtotal    float64 `json:"subtotal"`
}
