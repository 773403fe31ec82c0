package dto

// ScreenState estado tipado de una pantalla. Sustituye las banderas sueltas
// (loading, perfil == null, ...) por un conjunto cerrado.
type ScreenState string

const (
	ScreenReady ScreenState = "ready" // hay datos para mostrar
	ScreenEmpty ScreenState = "empty" // falta un registro esperado: se muestra un CTA, no un error
	ScreenError ScreenState = "error" // fallo visible con salida (reintentar, volver, login)
)

// DashboardSummaryDTO KPIs del negocio, recalculados en cada carga.
type DashboardSummaryDTO struct {
	TotalProducts int    `json:"total_products"`
	TotalReviews  int    `json:"total_reviews"`
	AverageRating Rating `json:"average_rating"`
}

// RoleOption opción del selector de rol.
type RoleOption struct {
	Role        string `json:"role"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// FlowResponse resultado del flujo de onboarding para /dashboard.
// Step: awaiting_role | redirect | business_required | dashboard.
type FlowResponse struct {
	State       ScreenState          `json:"state"`
	Step        string               `json:"step"`
	Redirect    string               `json:"redirect,omitempty"`
	CTA         string               `json:"cta,omitempty"`
	Email       string               `json:"email,omitempty"`
	RoleOptions []RoleOption         `json:"role_options,omitempty"`
	Business    *BusinessResponse    `json:"business,omitempty"`
	Summary     *DashboardSummaryDTO `json:"summary,omitempty"`
}
