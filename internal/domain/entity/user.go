package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin     = "admin"
	RoleCommander = "commander"
	RoleLogistics = "logistics"
)

// ValidRole indica si el rol es uno de los conocidos.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleCommander || role == RoleLogistics
}

// RoleCapabilities conjunto de capacidades (secciones visibles/accionables)
// por rol. La capa de UI lo consume tal cual; el router lo usa para RBAC.
var RoleCapabilities = map[string][]string{
	RoleAdmin:     {"dashboard", "purchases", "transfers", "assignments", "expenditures", "admin"},
	RoleCommander: {"dashboard", "purchases", "transfers", "assignments", "expenditures"},
	RoleLogistics: {"dashboard", "purchases", "transfers"},
}

// User representa un usuario del sistema. BaseID es la base "casa" del
// usuario; vacío para admins con visión global.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, commander, logistics
	BaseID       string
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
