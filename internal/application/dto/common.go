package dto

// PageMeta metadatos de paginación en listados.
// TotalPages solo se calcula cuando hay limit.
type PageMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page,omitempty"`
	Limit      int   `json:"limit,omitempty"`
	TotalPages int   `json:"total_pages,omitempty"`
}

// NewPageMeta construye los metadatos a partir del total y la paginación pedida.
func NewPageMeta(total int64, page, limit int) PageMeta {
	meta := PageMeta{Total: total, Page: page, Limit: limit}
	if limit > 0 {
		meta.TotalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return meta
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
