package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto publicado por un negocio.
type Product struct {
	ID          string
	BusinessID  string
	Name        string
	Description string
	Price       decimal.Decimal // no negativo
	Stock       *int            // nil = no se controla stock
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
