package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/seu-usuario/estoque-api/internal/application/catalog"
	"github.com/seu-usuario/estoque-api/internal/application/dto"
	"github.com/seu-usuario/estoque-api/internal/domain"
	"github.com/seu-usuario/estoque-api/pkg/validator"
)

// ItemHandler maneja o catálogo de itens (protegido).
type ItemHandler struct {
	uc *catalog.UseCase
}

// NewItemHandler constrói o handler do catálogo.
func NewItemHandler(uc *catalog.UseCase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// List godoc
// @Summary      Listar itens do catálogo
// @Tags         itens
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.ItemDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/itens [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	itens, err := h.uc.ListarItens(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(itens)
}

// Create godoc
// @Summary      Registrar item (item + linha do razão, atômico)
// @Tags         itens
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ItemCreateRequest  true  "cod, descricao, unid, estoque_minimo (opcional, padrão 10)"
// @Success      200   {object}  dto.OkResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/itens [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.ItemCreateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validator.Message(errs)})
	}
	if err := h.uc.RegistrarItem(c.Context(), in); err != nil {
		if errors.Is(err, domain.ErrCodigoDuplicado) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "DUPLICATE_CODE", Message: "Código já existe"})
		}
		if errors.Is(err, domain.ErrDadosInvalidos) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados inválidos"})
		}
		return internalError(c, err)
	}
	return c.JSON(dto.OkResponse{Ok: true})
}
