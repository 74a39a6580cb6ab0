package dto

// LoginRequest credenciales del operador.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token emitido tras un login válido.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"` // segundos
	Username  string `json:"username"`
	Role      string `json:"role"`
}
