package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los errores de validación se detectan siempre antes de tocar la base de datos.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrInvalidInput = errors.New("entrada inválida")

	ErrInvalidDateFormat   = errors.New("formato de fecha inválido, se espera YYYY-MM-DD")
	ErrInvalidPagination   = errors.New("paginación inválida, page y limit deben ser enteros >= 1")
	ErrInvalidSortOrder    = errors.New("orden inválido, se espera ASC o DESC")
	ErrInvalidGranularity  = errors.New("granularidad inválida, se espera day, week, month o year")
	ErrMissingPeriodBounds = errors.New("período incompleto, los cuatro límites de fecha son requeridos")
)
