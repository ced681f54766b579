package entity

import "time"

// Category agrupa productos para filtros y reportes comparativos.
// El nombre es único a nivel global.
type Category struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
