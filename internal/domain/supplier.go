package domain

// Supplier is a goods provider from the proveedores table.
type Supplier struct {
	SupplierCode int    `json:"cod_proveedor"`
	CompanyName  string `json:"razon_social"`
	RUC          string `json:"ruc"`
	Phone        string `json:"telefono"`
	Address      string `json:"direccion"`
	Status       string `json:"estado"`
}
