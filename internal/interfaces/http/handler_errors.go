package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/seu-usuario/estoque-api/internal/application/dto"
)

// internalError registra o erro de storage e responde um 500 genérico, sem
// vazar detalhes internos ao cliente.
func internalError(c *fiber.Ctx, err error) error {
	log.Error().Err(err).Str("path", c.Path()).Msg("erro interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro interno do servidor"})
}
