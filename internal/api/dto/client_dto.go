package dto

// ClientRequest payload for create and update.
type ClientRequest struct {
	Name     string `json:"nombre"`
	LastName string `json:"apellido"`
	DNI      string `json:"dni"`
	Phone    string `json:"telefono"`
	Address  string `json:"direccion"`
	Status   string `json:"estado"`
}
