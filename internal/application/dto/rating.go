package dto

import "github.com/shopspring/decimal"

// Rating promedio de calificaciones. En JSON es un número con un decimal (4.0, 4.5),
// no el texto que emite decimal.Decimal por defecto.
type Rating struct {
	decimal.Decimal
}

// NewRating envuelve un promedio ya redondeado.
func NewRating(d decimal.Decimal) Rating {
	return Rating{Decimal: d}
}

func (r Rating) MarshalJSON() ([]byte, error) {
	return []byte(r.StringFixed(1)), nil
}

// UnmarshalJSON acepta número o texto.
func (r *Rating) UnmarshalJSON(data []byte) error {
	return r.Decimal.UnmarshalJSON(data)
}
