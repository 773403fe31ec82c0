package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/MercadoLocal-api/internal/application/auth"
	"github.com/jhoicas/MercadoLocal-api/internal/domain"
	"github.com/jhoicas/MercadoLocal-api/internal/domain/entity"
)

// Locals keys para la identidad y la sesión en Fiber.
const (
	LocalIdentity  = "identity"
	LocalSessionID = "session_id"
)

// sessionResolver lo implementa *auth.SessionResolver.
type sessionResolver interface {
	Resolve(ctx context.Context, token string) (*auth.Principal, error)
}

// AuthMiddleware resuelve la sesión del Bearer token y carga la identidad en c.Locals.
//
//   - 401 UNAUTHENTICATED (+ redirect al login) si no hay sesión vigente;
//   - 503 AUTH_UNAVAILABLE si no se pudo consultar el almacén de sesiones;
//   - 504 TIMEOUT si la consulta excedió el tiempo de la petición.
//
// Ninguna ruta protegida llega a ejecutarse sin identidad.
func AuthMiddleware(resolver sessionResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, err := resolver.Resolve(c.UserContext(), bearerToken(c))
		if err != nil {
			return respondError(c, err)
		}
		if principal == nil {
			return respondError(c, domain.ErrUnauthenticated)
		}
		c.Locals(LocalIdentity, principal.Identity)
		c.Locals(LocalSessionID, principal.SessionID)
		return c.Next()
	}
}

func bearerToken(c *fiber.Ctx) string {
	parts := strings.SplitN(c.Get(fiber.HeaderAuthorization), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// GetIdentity devuelve la identidad del contexto (después del middleware de auth).
func GetIdentity(c *fiber.Ctx) (entity.Identity, bool) {
	id, ok := c.Locals(LocalIdentity).(entity.Identity)
	return id, ok && id.ID != ""
}

// GetUserID devuelve el ID de la identidad o "".
func GetUserID(c *fiber.Ctx) string {
	id, _ := GetIdentity(c)
	return id.ID
}

// GetSessionID devuelve el ID de la sesión actual o "".
func GetSessionID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalSessionID).(string)
	return s
}
