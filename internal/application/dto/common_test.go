package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_Defaults(t *testing.T) {
	q := ListQuery{}
	require.NoError(t, q.Normalize("name", EmployeeSortFields))

	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.PerPage)
	assert.Equal(t, "name", q.SortBy)
	assert.Equal(t, "asc", q.SortOrder)
}

func TestNormalize_RecortaPageYPerPage(t *testing.T) {
	q := ListQuery{Page: -3, PerPage: 500}
	require.NoError(t, q.Normalize("name", EmployeeSortFields))

	assert.Equal(t, 1, q.Page, "page menor a 1 se normaliza a 1")
	assert.Equal(t, 100, q.PerPage, "per_page se recorta al máximo 100")
}

func TestNormalize_SortByFueraDeWhitelist(t *testing.T) {
	q := ListQuery{SortBy: "password_hash"}
	err := q.Normalize("name", EmployeeSortFields)
	assert.Error(t, err, "un campo fuera de la whitelist es error de validación")
}

func TestNormalize_SortOrderInvalido(t *testing.T) {
	q := ListQuery{SortOrder: "random"}
	err := q.Normalize("name", EmployeeSortFields)
	assert.Error(t, err)
}

func TestNormalize_SortOrderDescValido(t *testing.T) {
	q := ListQuery{SortBy: "price", SortOrder: "desc"}
	require.NoError(t, q.Normalize("name", ProductSortFields))
	assert.Equal(t, "desc", q.SortOrder)
}

func TestOffset(t *testing.T) {
	q := ListQuery{Page: 3, PerPage: 10}
	require.NoError(t, q.Normalize("name", CustomerSortFields))
	assert.Equal(t, 20, q.Offset())
}

func TestNewListMeta_PagesRedondeaHaciaArriba(t *testing.T) {
	q := ListQuery{Page: 1, PerPage: 10}
	m := NewListMeta(25, q)

	assert.Equal(t, int64(25), m.Total)
	assert.Equal(t, 3, m.Pages, "25 filas en páginas de 10 son 3 páginas")
	assert.Equal(t, 1, m.Page)
	assert.Equal(t, 10, m.PerPage)
}

func TestNewListMeta_SinFilas(t *testing.T) {
	q := ListQuery{Page: 1, PerPage: 10}
	m := NewListMeta(0, q)
	assert.Equal(t, 0, m.Pages)
}
