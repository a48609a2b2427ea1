package dto

// RegisterUserRequest entrada para registrar un operador (password en texto, se hashea en use case).
type RegisterUserRequest struct {
	Username string `validate:"required,max=100"`
	Password string `validate:"required,min=8"`
}
