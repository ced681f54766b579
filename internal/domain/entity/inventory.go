package entity

import "time"

// Inventory es el registro de existencias de un producto (uno por producto).
// La condición de alerta es CurrentStock <= MinimumThreshold.
type Inventory struct {
	ID               string
	ProductID        string
	CurrentStock     int
	MinimumThreshold int
	UpdatedAt        time.Time
}
