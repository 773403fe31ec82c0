package entity

import "time"

// Role rol elegido por el usuario en el onboarding.
type Role string

// Roles válidos para Profile. RoleUnset es el estado previo a la selección.
const (
	RoleUnset       Role = ""
	RoleCliente     Role = "cliente"
	RoleEmprendedor Role = "emprendedor"
)

// Valid informa si el rol es uno de los seleccionables.
func (r Role) Valid() bool {
	return r == RoleCliente || r == RoleEmprendedor
}

// ParseRole convierte texto de entrada en Role; devuelve false si no es seleccionable.
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	return r, r.Valid()
}

// Profile registro propio del sistema con el rol del usuario (una fila por Identity como máximo).
type Profile struct {
	ID        string // = Identity.ID
	Email     string // copia denormalizada del email de la Identity
	Role      Role
	Name      string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasRole informa si el perfil ya pasó por la selección de rol.
func (p *Profile) HasRole() bool {
	return p != nil && p.Role.Valid()
}
