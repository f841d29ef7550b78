package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// HeaderRequestID header propagado na resposta para correlação de logs.
const HeaderRequestID = "X-Request-Id"

// RequestID anexa um id único a cada request e o registra no log estruturado.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(HeaderRequestID, id)
		c.Locals(HeaderRequestID, id)

		err := c.Next()

		log.Debug().
			Str("request_id", id).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Msg("request atendido")
		return err
	}
}
