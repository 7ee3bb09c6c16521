package domain

// Seller is a sales employee from the vendedores table.
type Seller struct {
	SellerCode   int     `json:"cod_vendedor"`
	EmployeeCode int     `json:"cod_empleado"`
	Name         string  `json:"nombre"`
	LastName     string  `json:"apellido"`
	DNI          string  `json:"dni"`
	CommissionPc float64 `json:"porcentaje_comision"`
	Status       string  `json:"estado"`
}
