package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// Sesión ausente, expirada o revocada: el cliente debe volver al login.
	ErrUnauthenticated = errors.New("sesión requerida")
	// El servicio de autenticación no respondió: no equivale a "sin sesión".
	ErrAuthUnavailable = errors.New("servicio de autenticación no disponible")
	// El almacenamiento relacional no respondió (red, configuración, timeout).
	ErrStoreUnavailable = errors.New("almacenamiento no disponible")
	// El almacenamiento de objetos rechazó o no pudo guardar el archivo.
	ErrUploadFailed = errors.New("no se pudo subir el archivo")

	ErrInvalidRole    = errors.New("rol inválido")
	ErrBusinessExists = errors.New("ya existe un negocio para este usuario")
	ErrNoBusiness     = errors.New("el usuario no tiene negocio")
)
