package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/factory-api/internal/interfaces/http"
)

// memCache implementación en memoria de ResponseCache para los tests.
type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{data: make(map[string][]byte)}
}

func (m *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memCache) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memCache) InvalidatePrefix(_ context.Context, prefix string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			delete(m.data, k)
		}
	}
	return nil
}

// buildCachedApp app con un GET y un POST sobre el mismo recurso; el handler
// GET cuenta cuántas veces llegó a ejecutarse (para distinguir hit de miss).
func buildCachedApp(cache apphttp.ResponseCache, hits *int) *fiber.App {
	app := fiber.New()
	mw := apphttp.CacheMiddleware(cache, "widgets")
	app.Get("/widgets", mw, func(c *fiber.Ctx) error {
		*hits++
		return c.JSON(fiber.Map{"hits": *hits})
	})
	app.Post("/widgets", mw, func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"created": true})
	})
	return app
}

func get(t *testing.T, app *fiber.App, url string) (*http.Response, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, url, nil), -1)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	return resp, string(body)
}

func TestCacheMiddleware_SegundaLecturaVieneDeCache(t *testing.T) {
	cache := newMemCache()
	hits := 0
	app := buildCachedApp(cache, &hits)

	_, body1 := get(t, app, "/widgets")
	_, body2 := get(t, app, "/widgets")

	assert.Equal(t, 1, hits, "la segunda lectura no debe llegar al handler")
	assert.Equal(t, body1, body2, "la respuesta cacheada debe ser idéntica")
}

func TestCacheMiddleware_URLsDistintasSonClavesDistintas(t *testing.T) {
	cache := newMemCache()
	hits := 0
	app := buildCachedApp(cache, &hits)

	get(t, app, "/widgets?page=1")
	get(t, app, "/widgets?page=2")

	assert.Equal(t, 2, hits, "cada combinación de query params se cachea aparte")
}

func TestCacheMiddleware_EscrituraInvalidaLasLecturas(t *testing.T) {
	cache := newMemCache()
	hits := 0
	app := buildCachedApp(cache, &hits)

	get(t, app, "/widgets")
	require.Equal(t, 1, hits)

	// Escritura exitosa: debe vaciar la caché del recurso
	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/widgets", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	get(t, app, "/widgets")
	assert.Equal(t, 2, hits, "tras una escritura la lectura debe ir a la base de datos")
}

func TestCacheMiddleware_CacheNilEsTransparente(t *testing.T) {
	hits := 0
	app := buildCachedApp(nil, &hits)

	get(t, app, "/widgets")
	get(t, app, "/widgets")

	assert.Equal(t, 2, hits, "sin caché cada lectura llega al handler")
}

func TestCacheMiddleware_InvalidaTambienRecursosDerivados(t *testing.T) {
	cache := newMemCache()
	hits := 0
	app := fiber.New()
	app.Get("/reports", apphttp.CacheMiddleware(cache, "reports"), func(c *fiber.Ctx) error {
		hits++
		return c.JSON(fiber.Map{"hits": hits})
	})
	app.Post("/widgets", apphttp.CacheMiddleware(cache, "widgets", "reports"), func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"created": true})
	})

	get(t, app, "/reports")
	require.Equal(t, 1, hits)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/widgets", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()

	get(t, app, "/reports")
	assert.Equal(t, 2, hits, "una escritura en el recurso base invalida los reportes cacheados")
}
