package domain

// Client is a buyer account from the clientes table.
type Client struct {
	ClientCode int    `json:"cod_cliente"`
	PersonCode int    `json:"cod_persona"`
	Name       string `json:"nombre"`
	LastName   string `json:"apellido"`
	DNI        string `json:"dni"`
	Phone      string `json:"telefono"`
	Address    string `json:"direccion"`
	Status     string `json:"estado"`
}
