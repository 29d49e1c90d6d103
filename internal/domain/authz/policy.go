// Package authz centraliza la política de roles: un único tipo Role
// enumerado y una sola tabla rol→navegación consultada por todo el sistema.
// La decisión es un lookup puro; la capa HTTP es quien redirige o bloquea.
package authz

// Role nivel de permiso fijo de una cuenta de usuario. Solo un administrador
// puede cambiar el rol de un usuario; nunca el propio titular.
type Role string

const (
	RoleSuperAdmin Role = "SUPERADMIN"
	RoleAdmin      Role = "ADMIN"
	RoleSales      Role = "SALES"
	RoleWarehouse  Role = "WAREHOUSE"
	RoleFinance    Role = "FINANCE"
)

// ParseRole valida un rol serializado. Un string fuera del conjunto cerrado
// devuelve ok=false; el caller decide el fallback (siempre cerrado, nunca
// un rol elevado).
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleSuperAdmin, RoleAdmin, RoleSales, RoleWarehouse, RoleFinance:
		return Role(s), true
	}
	return "", false
}

// Valid reporta si el rol pertenece al conjunto cerrado.
func (r Role) Valid() bool {
	_, ok := ParseRole(string(r))
	return ok
}

// IsAuthorized responde si role está dentro del conjunto requerido.
// Rol vacío o desconocido (usuario aún no resuelto, documento ausente,
// fallo del proveedor de identidad) siempre es false: se falla cerrado,
// jamás abierto.
func IsAuthorized(role Role, required ...Role) bool {
	if !role.Valid() {
		return false
	}
	for _, r := range required {
		if role == r {
			return true
		}
	}
	return false
}
