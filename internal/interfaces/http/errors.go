package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jhoicas/MercadoLocal-api/internal/application/dto"
	"github.com/jhoicas/MercadoLocal-api/internal/application/onboarding"
	"github.com/jhoicas/MercadoLocal-api/internal/domain"
)

// LocalError guarda el error original para que RequestLogger lo registre.
const LocalError = "error"

// respondError traduce un error de dominio a la respuesta HTTP correspondiente.
// Cada respuesta deja al cliente con una salida: corregir la entrada, reintentar o ir al login.
func respondError(c *fiber.Ctx, err error) error {
	c.Locals(LocalError, err)
	status, body := mapError(err)
	body.State = dto.ScreenError
	return c.Status(status).JSON(body)
}

func mapError(err error) (int, dto.ErrorResponse) {
	switch {
	case isTimeout(err):
		return fiber.StatusGatewayTimeout, dto.ErrorResponse{Code: "TIMEOUT", Message: "la operación tardó demasiado; intenta de nuevo", Retry: true}
	case errors.Is(err, domain.ErrUnauthenticated):
		return fiber.StatusUnauthorized, dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "inicia sesión para continuar", Redirect: onboarding.PathLogin}
	case errors.Is(err, domain.ErrAuthUnavailable):
		return fiber.StatusServiceUnavailable, dto.ErrorResponse{Code: "AUTH_UNAVAILABLE", Message: "el servicio de autenticación no responde", Retry: true}
	case errors.Is(err, domain.ErrStoreUnavailable):
		return fiber.StatusServiceUnavailable, dto.ErrorResponse{Code: "STORE_UNAVAILABLE", Message: "la base de datos no responde", Retry: true}
	case errors.Is(err, domain.ErrUploadFailed):
		return fiber.StatusBadGateway, dto.ErrorResponse{Code: "UPLOAD_FAILED", Message: "no se pudo subir la imagen", Retry: true}
	case errors.Is(err, domain.ErrBusinessExists):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "BUSINESS_EXISTS", Message: "ya tienes un negocio registrado", Redirect: onboarding.PathDashboard}
	case errors.Is(err, domain.ErrNoBusiness):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "NO_BUSINESS", Message: "primero crea tu negocio", Redirect: onboarding.PathBusinessNew}
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"}
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"}
	case errors.Is(err, domain.ErrInvalidRole):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "INVALID_ROLE", Message: "el rol debe ser cliente o emprendedor"}
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()}
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"}
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"}
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()}
	default:
		return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "INTERNAL", Message: "error interno", Retry: true}
	}
}

// isTimeout detecta errores de timeout/cancelación de contexto.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline exceeded")
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{State: dto.ScreenError, Code: "NOT_FOUND", Message: message})
}

// idParam lee un parámetro de ruta que debe ser UUID y lo devuelve normalizado.
// Un id con otro formato no puede existir en ningún almacén: responde 404 y ok=false.
func idParam(c *fiber.Ctx, name, notFoundMsg string) (id string, ok bool, err error) {
	parsed, perr := uuid.Parse(c.Params(name))
	if perr != nil {
		return "", false, notFound(c, notFoundMsg)
	}
	return parsed.String(), true, nil
}
