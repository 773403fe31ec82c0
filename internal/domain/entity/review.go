package entity

import "time"

// Límites de la calificación en estrellas.
const (
	MinRating = 1
	MaxRating = 5
)

// Review reseña de un cliente sobre un negocio, opcionalmente sobre uno de sus productos.
type Review struct {
	ID          string
	AuthorID    string
	AuthorEmail string // solo lectura: resuelto por join con profiles
	BusinessID  string
	ProductID   string // vacío si la reseña es del negocio
	ProductName string // solo lectura
	Rating      int
	Comment     string
	CreatedAt   time.Time
}
