package domain

import "time"

// Contract is a supply agreement from the contratos table.
type Contract struct {
	ContractCode int       `json:"cod_contrato"`
	SupplierCode int       `json:"cod_proveedor"`
	AdvisorCode  int       `json:"cod_asesor"`
	StartDate    time.Time `json:"fecha_inicio"`
	EndDate      time.Time `json:"fecha_fin"`
	Amount       float64   `json:"monto"`
	Status       string    `json:"estado"`
}
