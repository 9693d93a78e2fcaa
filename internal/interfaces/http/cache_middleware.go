package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// ResponseCache puerto local de la caché de respuestas (evita acoplar el
// paquete http al adaptador de Redis).
type ResponseCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	InvalidatePrefix(ctx context.Context, prefix string) error
}

// cacheKeyPrefix prefijo de claves por recurso; la clave completa incluye la
// URL original con query params, así cada página/orden se cachea aparte.
func cacheKeyPrefix(resource string) string {
	return "cache:" + resource + ":"
}

// CacheMiddleware cachea respuestas GET exitosas por URL completa e invalida
// todas las claves del recurso cuando una escritura (POST/PUT/DELETE) termina
// sin error. alsoInvalidate permite arrastrar recursos derivados (los
// reportes agregan datos de varios recursos). Con cache nil es transparente.
// Los fallos de la caché se loguean y la petición sigue contra la base de datos.
func CacheMiddleware(cache ResponseCache, resource string, alsoInvalidate ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cache == nil {
			return c.Next()
		}
		prefix := cacheKeyPrefix(resource)

		if c.Method() == fiber.MethodGet {
			key := prefix + c.OriginalURL()
			body, ok, err := cache.Get(c.Context(), key)
			if err != nil {
				log.Warn().Err(err).Str("key", key).Msg("caché no disponible para lectura")
			} else if ok {
				c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
				return c.Status(fiber.StatusOK).Send(body)
			}
			if err := c.Next(); err != nil {
				return err
			}
			if c.Response().StatusCode() == fiber.StatusOK {
				// Copia del body: fasthttp reutiliza el buffer tras responder.
				stored := make([]byte, len(c.Response().Body()))
				copy(stored, c.Response().Body())
				if err := cache.Set(c.Context(), key, stored); err != nil {
					log.Warn().Err(err).Str("key", key).Msg("no se pudo guardar en caché")
				}
			}
			return nil
		}

		if err := c.Next(); err != nil {
			return err
		}
		if c.Response().StatusCode() < 400 {
			for _, res := range append([]string{resource}, alsoInvalidate...) {
				if err := cache.InvalidatePrefix(c.Context(), cacheKeyPrefix(res)); err != nil {
					log.Warn().Err(err).Str("resource", res).Msg("no se pudo invalidar la caché")
				}
			}
		}
		return nil
	}
}
