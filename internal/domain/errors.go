package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los handlers HTTP los
// mapean al código de estado correspondiente.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrForeignKey         = errors.New("violación de clave foránea")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)
