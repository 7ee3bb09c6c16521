package dto

// SellerRequest payload for create and update.
type SellerRequest struct {
	EmployeeCode int     `json:"cod_empleado"`
	Name         string  `json:"nombre"`
	LastName     string  `json:"apellido"`
	DNI          string  `json:"dni"`
	CommissionPc float64 `json:"porcentaje_comision"`
	Status       string  `json:"estado"`
}
