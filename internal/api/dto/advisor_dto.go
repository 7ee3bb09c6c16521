package dto

// AdvisorRequest payload for create and update.
type AdvisorRequest struct {
	EmployeeCode int    `json:"cod_empleado"`
	Name         string `json:"nombre"`
	LastName     string `json:"apellido"`
	DNI          string `json:"dni"`
	Status       string `json:"estado"`
}
