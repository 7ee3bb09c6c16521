package domain

// Advisor is a commercial advisor from the asesores table.
type Advisor struct {
	AdvisorCode  int    `json:"cod_asesor"`
	EmployeeCode int    `json:"cod_empleado"`
	Name         string `json:"nombre"`
	LastName     string `json:"apellido"`
	DNI          string `json:"dni"`
	Status       string `json:"estado"`
}

// AdvisorSpecialty links an advisor to a specialty.
type AdvisorSpecialty struct {
	AdvisorCode   int    `json:"cod_asesor"`
	SpecialtyCode int    `json:"cod_especialidad"`
	SpecialtyName string `json:"especialidad"`
}
