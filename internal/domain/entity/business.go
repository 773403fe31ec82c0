package entity

import "time"

// Business negocio (tienda) de un emprendedor. Como máximo uno por OwnerID.
type Business struct {
	ID          string
	OwnerID     string
	Name        string
	Description string
	WhatsApp    string // solo dígitos, sin código de país
	LogoURL     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
