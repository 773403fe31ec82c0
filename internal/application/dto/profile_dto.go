package dto

import "time"

// SelectRoleRequest entrada del selector de rol.
type SelectRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=cliente emprendedor"`
}

// UpdateProfileRequest datos de contacto editables desde "Mi perfil".
type UpdateProfileRequest struct {
	Name  string `json:"name" validate:"max=200"`
	Phone string `json:"phone" validate:"omitempty,numeric,max=20"`
}

// ProfileResponse salida de un perfil.
type ProfileResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
