package dto

import "time"

// FavoriteResponse negocio favorito del usuario.
type FavoriteResponse struct {
	Business  BusinessResponse `json:"business"`
	CreatedAt time.Time        `json:"created_at"`
}
