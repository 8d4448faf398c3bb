package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrUnknownBranch  = errors.New("sucursal no registrada")
	ErrUnknownProduct = errors.New("producto fuera del catálogo")
	ErrEmptyOrder     = errors.New("no hay productos con cantidad a pedir")
)
