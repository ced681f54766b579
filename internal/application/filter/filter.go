// Package filter normaliza los parámetros crudos de la petición (strings de
// fecha, paginación, orden, listas de ids) en valores tipados y validados.
// Toda validación ocurre aquí, antes de cualquier acceso a la base de datos.
package filter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/ventas-api/internal/domain"
)

const dateLayout = "2006-01-02"

// ParseDate valida y convierte una fecha en formato YYYY-MM-DD.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidDateFormat, s)
	}
	return t, nil
}

// DateRange valida un rango opcional de fechas. Un string vacío deja el
// límite abierto (time.Time cero); el repositorio aplica época / ahora.
func DateRange(startStr, endStr string) (start, end time.Time, err error) {
	if startStr != "" {
		if start, err = ParseDate(startStr); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	if endStr != "" {
		if end, err = ParseDate(endStr); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	return start, end, nil
}

// Pagination valida page y limit como strings crudos de la query.
// Vacío significa "sin paginación" (cero); cualquier otro valor debe ser un
// entero >= 1.
func Pagination(pageStr, limitStr string) (page, limit int, err error) {
	if page, err = positiveInt("page", pageStr); err != nil {
		return 0, 0, err
	}
	if limit, err = positiveInt("limit", limitStr); err != nil {
		return 0, 0, err
	}
	return page, limit, nil
}

func positiveInt(name, s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %s=%q", domain.ErrInvalidPagination, name, s)
	}
	return n, nil
}

// SortOrder canonicaliza ASC/DESC aceptando cualquier combinación de
// mayúsculas. Vacío se devuelve vacío (el caller aplica su default).
func SortOrder(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	switch strings.ToUpper(s) {
	case "ASC":
		return "ASC", nil
	case "DESC":
		return "DESC", nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrInvalidSortOrder, s)
}

// SplitIDs divide una lista de ids unida por comas, descartando entradas vacías.
func SplitIDs(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ids = append(ids, p)
		}
	}
	return ids
}
