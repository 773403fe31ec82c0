package dto

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit" validate:"min=1,max=100"`
	Offset int `query:"offset" validate:"min=0"`
}

// DefaultPage aplica valores por defecto si Limit/Offset están fuera de rango.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total,omitempty"`
}

// ErrorResponse cuerpo de error HTTP.
// Redirect indica a dónde debe navegar el cliente (ej. /auth/login); Retry que puede reintentar.
type ErrorResponse struct {
	State    ScreenState `json:"state,omitempty"`
	Code     string      `json:"code"`
	Message  string      `json:"message"`
	Redirect string      `json:"redirect,omitempty"`
	Retry    bool        `json:"retry,omitempty"`
}
