// Package reputation agrega calificaciones de reseñas (servicio de dominio puro).
package reputation

import (
	"github.com/shopspring/decimal"
)

// AverageRating devuelve la media aritmética de las calificaciones redondeada a un decimal.
// Sin calificaciones el promedio es 0, nunca NaN ni error.
func AverageRating(ratings []int) decimal.Decimal {
	if len(ratings) == 0 {
		return decimal.Zero
	}
	var sum int64
	for _, r := range ratings {
		sum += int64(r)
	}
	// un solo redondeo: redondear un cociente ya redondeado puede subir x.x4999 a x.x5
	return decimal.NewFromInt(sum).DivRound(decimal.NewFromInt(int64(len(ratings))), 1)
}

// Summary conteo y promedio de un conjunto de reseñas.
type Summary struct {
	Total   int
	Average decimal.Decimal
}

// Summarize calcula total y promedio a partir de las calificaciones.
func Summarize(ratings []int) Summary {
	return Summary{Total: len(ratings), Average: AverageRating(ratings)}
}
