package dto

// SeedResultDTO conteo de filas creadas por el seeder de datos de demo.
type SeedResultDTO struct {
	Categories int `json:"categories"`
	Products   int `json:"products"`
	Inventory  int `json:"inventory"`
	Sales      int `json:"sales"`
}
