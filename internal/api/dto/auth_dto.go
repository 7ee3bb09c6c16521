package dto

// LoginRequest is the login payload. The field names match what the legacy
// clients already send.
type LoginRequest struct {
	DNI      string `json:"dni"`
	Password string `json:"contraseña"`
}

// LoginResponse carries only the signed token; claims are embedded, never
// echoed in the body.
type LoginResponse struct {
	Token string `json:"token"`
}
