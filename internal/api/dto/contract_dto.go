package dto

import "time"

// ContractRequest payload for create.
type ContractRequest struct {
	SupplierCode int       `json:"cod_proveedor"`
	AdvisorCode  int       `json:"cod_asesor"`
	StartDate    time.Time `json:"fecha_inicio"`
	EndDate      time.Time `json:"fecha_fin"`
	Amount       float64   `json:"monto"`
	Status       string    `json:"estado"`
}

// ContractStatusRequest payload for status updates.
type ContractStatusRequest struct {
	Status string `json:"estado"`
}
