package auth

// Role define los roles soportados por el sistema.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleWorker Role = "worker"
)

// ValidRole reporta si s corresponde a un rol conocido.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleAdmin, RoleWorker:
		return true
	}
	return false
}

// Claims representa la información extraída del token.
type Claims struct {
	UserID int64
	Email  string
	Role   Role
}

// IsAdmin reporta si los claims pertenecen a un administrador.
func (c Claims) IsAdmin() bool {
	return c.Role == RoleAdmin
}
