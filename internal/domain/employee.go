package domain

// EmployeeStatus mirrors the estado column of the empleados table.
type EmployeeStatus string

const (
	EmployeeStatusActive   EmployeeStatus = "activo"
	EmployeeStatusInactive EmployeeStatus = "inactivo"
)

// Employee is the credential record looked up at login. The store owns it;
// the auth core only reads it.
type Employee struct {
	EmployeeCode int
	DNI          string
	Name         string
	Secret       string
	Status       EmployeeStatus
	IsAdmin      bool
}

// Active reports whether the account may authenticate.
func (e *Employee) Active() bool {
	return e.Status == EmployeeStatusActive
}
