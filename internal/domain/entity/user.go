package entity

// User credencial de un operador. PasswordHash es un hash bcrypt, nunca la contraseña en claro.
type User struct {
	Username     string
	PasswordHash string
}
