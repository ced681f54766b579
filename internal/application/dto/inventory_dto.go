package dto

// CreateInventoryRequest cuerpo de POST /api/inventory.
// MinimumThreshold en nil aplica el default (10).
type CreateInventoryRequest struct {
	ProductID        string `json:"product_id"`
	CurrentStock     *int   `json:"current_stock"`
	MinimumThreshold *int   `json:"minimum_threshold"`
}

// UpdateInventoryRequest cuerpo de PUT /api/inventory/:id.
// Solo se actualizan los campos presentes.
type UpdateInventoryRequest struct {
	CurrentStock     *int `json:"current_stock"`
	MinimumThreshold *int `json:"minimum_threshold"`
}

// InventoryListRequest parámetros de GET /api/inventory y /api/inventory/alerts.
// Page y Limit llegan como strings crudos para poder distinguir "ausente"
// de valores inválidos como 0.
type InventoryListRequest struct {
	Page       string `query:"page"`
	Limit      string `query:"limit"`
	CategoryID string `query:"category_id"`
	SortBy     string `query:"sort_by"`
	SortOrder  string `query:"sort_order"`
}

// InventoryResponse representación HTTP de un registro de inventario.
type InventoryResponse struct {
	ID               string `json:"id"`
	ProductID        string `json:"product_id"`
	CurrentStock     int    `json:"current_stock"`
	MinimumThreshold int    `json:"minimum_threshold"`
	UpdatedAt        string `json:"updated_at"`
}

// InventoryItemDTO fila de listado con producto y categoría resueltos.
type InventoryItemDTO struct {
	ID               string           `json:"id"`
	CurrentStock     int              `json:"current_stock"`
	MinimumThreshold int              `json:"minimum_threshold"`
	UpdatedAt        string           `json:"updated_at"`
	Product          ProductSummary   `json:"product"`
	Category         *CategorySummary `json:"category,omitempty"`
}

// InventoryListResponse respuesta de los listados de inventario.
type InventoryListResponse struct {
	Data []InventoryItemDTO `json:"data"`
	Meta PageMeta           `json:"metadata"`
}
