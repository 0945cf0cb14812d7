package dto

// RegisterRequest entrada para registro: nombre, email y password en texto
// (se hashea en el use case, nunca se persiste plano).
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT y nombre a mostrar en la sesión.
type LoginResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
}
