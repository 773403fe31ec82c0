package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/MercadoLocal-api/internal/application/dto"
	"github.com/jhoicas/MercadoLocal-api/internal/application/onboarding"
	"github.com/jhoicas/MercadoLocal-api/internal/domain/entity"
)

// profileReader es el contrato mínimo que necesita el middleware; lo implementa
// cualquier repository.ProfileRepository.
type profileReader interface {
	GetByID(ctx context.Context, id string) (*entity.Profile, error)
}

// RequireRole devuelve un middleware Fiber que deja pasar solo a perfiles con el rol indicado.
// Debe usarse DESPUÉS de AuthMiddleware.
//
// Comportamiento:
//   - 409 ROLE_REQUIRED (+ redirect /dashboard) si aún no eligió rol;
//   - 403 FORBIDDEN (+ redirect al destino de su rol) si tiene otro rol;
//   - 503/504 si no se pudo leer el perfil.
func RequireRole(role entity.Role, profiles profileReader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		profile, err := profiles.GetByID(c.UserContext(), GetUserID(c))
		if err != nil {
			return respondError(c, err)
		}
		if !profile.HasRole() {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				State:    dto.ScreenError,
				Code:     "ROLE_REQUIRED",
				Message:  "elige un rol para continuar",
				Redirect: onboarding.PathDashboard,
			})
		}
		if profile.Role != role {
			redirect := onboarding.PathDashboard
			if profile.Role == entity.RoleCliente {
				redirect = onboarding.PathCatalog
			}
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				State:    dto.ScreenError,
				Code:     "FORBIDDEN",
				Message:  "esta sección es solo para " + string(role),
				Redirect: redirect,
			})
		}
		return c.Next()
	}
}
