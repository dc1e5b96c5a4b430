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
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	// ErrOperationDone: una operación en estado done es terminal y no se puede volver a validar.
	ErrOperationDone = errors.New("la operación ya fue validada")
	// ErrNoSourceLocation: la verificación de disponibilidad requiere ubicación origen.
	ErrNoSourceLocation = errors.New("la operación no tiene ubicación origen")
	// ErrInvalidOTP: código de recuperación inexistente, incorrecto o vencido.
	ErrInvalidOTP = errors.New("código de verificación inválido o vencido")
)
