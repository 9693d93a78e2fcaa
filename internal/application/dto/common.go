package dto

import (
	"fmt"
	"math"
	"strings"
)

// Campos ordenables permitidos por recurso (whitelist para el ORDER BY).
var (
	EmployeeSortFields   = []string{"name", "position", "email", "phone"}
	ProductSortFields    = []string{"name", "price"}
	CustomerSortFields   = []string{"name", "email", "phone"}
	OrderSortFields      = []string{"created_at", "quantity", "total_price"}
	ProductionSortFields = []string{"date_produced", "quantity_produced"}
)

const (
	defaultPerPage = 10
	maxPerPage     = 100
)

// ListQuery parámetros genéricos de paginación y orden para listados.
type ListQuery struct {
	Page        int
	PerPage     int
	SortBy      string
	SortOrder   string
	IncludeMeta bool
}

// Normalize aplica defaults y recortes, y valida sort_by contra la whitelist
// del recurso y sort_order contra asc|desc. page < 1 se normaliza a 1 y
// per_page se recorta a [1,100] sin rechazar la petición; un sort_by fuera de
// la whitelist o un sort_order desconocido sí son errores de validación.
func (q *ListQuery) Normalize(defaultSort string, sortable []string) error {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage <= 0 {
		q.PerPage = defaultPerPage
	}
	if q.PerPage > maxPerPage {
		q.PerPage = maxPerPage
	}
	if q.SortBy == "" {
		q.SortBy = defaultSort
	}
	found := false
	for _, f := range sortable {
		if q.SortBy == f {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("sort_by inválido %q, permitidos: %s", q.SortBy, strings.Join(sortable, ", "))
	}
	switch q.SortOrder {
	case "":
		q.SortOrder = "asc"
	case "asc", "desc":
	default:
		return fmt.Errorf("sort_order inválido %q: debe ser asc o desc", q.SortOrder)
	}
	return nil
}

// Offset offset SQL derivado de page/per_page (requiere Normalize previo).
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.PerPage
}

// ListMeta metadatos de página devueltos cuando include_meta es true. Van
// aplanados en la respuesta del listado, como campos hermanos de los items.
type ListMeta struct {
	Total   int64 `json:"total"`
	Pages   int   `json:"pages"`
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
}

// NewListMeta calcula pages como ceil(total/per_page).
func NewListMeta(total int64, q ListQuery) *ListMeta {
	return &ListMeta{
		Total:   total,
		Pages:   int(math.Ceil(float64(total) / float64(q.PerPage))),
		Page:    q.Page,
		PerPage: q.PerPage,
	}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code  string `json:"code,omitempty"`
	Error string `json:"error"`
}

// MessageResponse cuerpo de confirmación para operaciones sin payload.
type MessageResponse struct {
	Message string `json:"message"`
}
