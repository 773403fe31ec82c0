package entity

import "time"

// Favorite negocio marcado como favorito por un usuario (único por par).
type Favorite struct {
	UserID     string
	BusinessID string
	CreatedAt  time.Time
	Business   *Business // cargado en listados
}
