package dto

import (
	"time"

	"github.com/jhoicas/MercadoLocal-api/internal/domain/entity"
)

// CreateBusinessRequest entrada para crear un negocio (JSON o multipart con archivo "logo").
type CreateBusinessRequest struct {
	Name        string `json:"name" form:"name" validate:"required,max=200"`
	Description string `json:"description" form:"description" validate:"max=2000"`
	WhatsApp    string `json:"whatsapp" form:"whatsapp" validate:"max=20"`
}

// UpdateBusinessRequest entrada para editar el negocio (campos opcionales).
type UpdateBusinessRequest struct {
	Name        *string `json:"name" form:"name" validate:"omitempty,max=200"`
	Description *string `json:"description" form:"description" validate:"omitempty,max=2000"`
	WhatsApp    *string `json:"whatsapp" form:"whatsapp" validate:"omitempty,max=20"`
}

// BusinessResponse salida de un negocio.
type BusinessResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	WhatsApp    string    `json:"whatsapp"`
	LogoURL     string    `json:"logo_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BusinessCreatedResponse respuesta de creación: el negocio y a dónde navegar.
type BusinessCreatedResponse struct {
	Business BusinessResponse `json:"business"`
	Redirect string           `json:"redirect"`
}

// BusinessListResponse lista paginada de negocios del catálogo.
type BusinessListResponse struct {
	Items []BusinessResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// CatalogDetailResponse negocio público con sus productos.
type CatalogDetailResponse struct {
	Business BusinessResponse  `json:"business"`
	Products []ProductResponse `json:"products"`
	ShareURL string            `json:"share_url"`
}

// ToBusinessResponse convierte la entidad al contrato de salida.
func ToBusinessResponse(b *entity.Business) BusinessResponse {
	if b == nil {
		return BusinessResponse{}
	}
	return BusinessResponse{
		ID:          b.ID,
		OwnerID:     b.OwnerID,
		Name:        b.Name,
		Description: b.Description,
		WhatsApp:    b.WhatsApp,
		LogoURL:     b.LogoURL,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
