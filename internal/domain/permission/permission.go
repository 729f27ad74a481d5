// Package permission resuelve qué puede hacer cada rol. El rol de un usuario es el título
// de su designación; "superuser" siempre está autorizado.
package permission

import "strings"

// Roles reconocidos.
const (
	RoleSuperuser  = "superuser"
	RoleAdmin      = "admin"
	RoleSupervisor = "supervisor"
	RoleMechanic   = "mechanic"
	RoleHR         = "hr"
	RoleEmployee   = "employee" // sin cargo asignado: solo lectura
)

// Action capacidad solicitada.
type Action string

const (
	View            Action = "view"
	ManageHR        Action = "manage_hr"
	ManageAssets    Action = "manage_assets"
	ManageInventory Action = "manage_inventory"
	ManageCompany   Action = "manage_company"
)

var grants = map[Action][]string{
	ManageHR:        {RoleAdmin, RoleHR},
	ManageAssets:    {RoleAdmin, RoleSupervisor, RoleMechanic},
	ManageInventory: {RoleAdmin, RoleMechanic},
	ManageCompany:   {RoleAdmin},
}

// Allowed indica si role puede ejecutar action.
func Allowed(role string, action Action) bool {
	role = Normalize(role)
	if role == "" {
		return false
	}
	if role == RoleSuperuser || action == View {
		return true
	}
	for _, r := range grants[action] {
		if r == role {
			return true
		}
	}
	return false
}

// Normalize pasa el título de designación a la forma canónica de rol.
func Normalize(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

// FromDesignation rol de un usuario según el título de su cargo; RoleEmployee si no tiene.
func FromDesignation(title string) string {
	if r := Normalize(title); r != "" {
		return r
	}
	return RoleEmployee
}
