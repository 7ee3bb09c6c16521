package dto

// SupplierRequest payload for create and update.
type SupplierRequest struct {
	CompanyName string `json:"razon_social"`
	RUC         string `json:"ruc"`
	Phone       string `json:"telefono"`
	Address     string `json:"direccion"`
	Status      string `json:"estado"`
}
