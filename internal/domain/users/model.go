package users

import "petshop-api/internal/ports/auth"

// User es un usuario del sistema (dashboard web / app mobile).
// SenhaHash guarda el bcrypt de la senha y jamás se serializa hacia
// el cliente.
type User struct {
	ID        int64
	Nome      string
	Email     string
	SenhaHash string
	Role      auth.Role
}
