package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/seu-usuario/estoque-api/internal/application/dto"
	"github.com/seu-usuario/estoque-api/internal/application/estoque"
	"github.com/seu-usuario/estoque-api/internal/domain"
	"github.com/seu-usuario/estoque-api/pkg/validator"
)

// EstoqueHandler maneja o razão de estoque: listagem, entradas, saídas e
// histórico de movimentações (protegido).
type EstoqueHandler struct {
	uc *estoque.UseCase
}

// NewEstoqueHandler constrói o handler do razão.
func NewEstoqueHandler(uc *estoque.UseCase) *EstoqueHandler {
	return &EstoqueHandler{uc: uc}
}

// List godoc
// @Summary      Listar razão de estoque com saldo e alerta
// @Tags         estoque
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.EstoqueDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/estoque [get]
func (h *EstoqueHandler) List(c *fiber.Ctx) error {
	rows, err := h.uc.ListarEstoque(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(rows)
}

// Entrada godoc
// @Summary      Registrar entrada de estoque
// @Tags         estoque
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MovimentoRequest  true  "cod, qtd, data (2006-01-02)"
// @Success      200   {object}  dto.OkResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/entrada [post]
func (h *EstoqueHandler) Entrada(c *fiber.Ctx) error {
	in, err := h.parseMovimento(c)
	if err != nil {
		return err
	}
	if err := h.uc.RegistrarEntrada(c.Context(), *in); err != nil {
		return h.movimentoError(c, err)
	}
	return c.JSON(dto.OkResponse{Ok: true})
}

// Saida godoc
// @Summary      Registrar saída de estoque
// @Tags         estoque
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MovimentoRequest  true  "cod, qtd, data (2006-01-02)"
// @Success      200   {object}  dto.OkResponse
// @Failure      400   {object}  dto.ErrorResponse  "saldo insuficiente (mensagem traz o saldo atual)"
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/saida [post]
func (h *EstoqueHandler) Saida(c *fiber.Ctx) error {
	in, err := h.parseMovimento(c)
	if err != nil {
		return err
	}
	if err := h.uc.RegistrarSaida(c.Context(), *in); err != nil {
		return h.movimentoError(c, err)
	}
	return c.JSON(dto.OkResponse{Ok: true})
}

// Movimentacoes godoc
// @Summary      Últimas 20 entradas e 20 saídas
// @Tags         estoque
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MovimentacoesDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/movimentacoes [get]
func (h *EstoqueHandler) Movimentacoes(c *fiber.Ctx) error {
	out, err := h.uc.ListarMovimentacoes(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

func (h *EstoqueHandler) parseMovimento(c *fiber.Ctx) (*dto.MovimentoRequest, error) {
	var in dto.MovimentoRequest
	if err := c.BodyParser(&in); err != nil {
		return nil, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return nil, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validator.Message(errs)})
	}
	return &in, nil
}

func (h *EstoqueHandler) movimentoError(c *fiber.Ctx, err error) error {
	var saldoErr *domain.SaldoInsuficienteError
	switch {
	case errors.Is(err, domain.ErrItemNaoEncontrado):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ITEM_NOT_FOUND", Message: "Item não encontrado"})
	case errors.As(err, &saldoErr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: saldoErr.Error()})
	case errors.Is(err, domain.ErrDadosInvalidos):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados inválidos"})
	default:
		return internalError(c, err)
	}
}
