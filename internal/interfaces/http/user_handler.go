package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/seu-usuario/estoque-api/internal/application/admin"
	"github.com/seu-usuario/estoque-api/internal/application/dto"
	"github.com/seu-usuario/estoque-api/internal/domain"
	"github.com/seu-usuario/estoque-api/pkg/validator"
)

// UserHandler maneja a administração de usuários. Todas as rotas ficam atrás
// de RequireAdmin no router.
type UserHandler struct {
	uc *admin.UserUseCase
}

// NewUserHandler constrói o handler de usuários.
func NewUserHandler(uc *admin.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List godoc
// @Summary      Listar usuários (sem digest de senha)
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.UserDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/usuarios [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.uc.ListarUsuarios(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(users)
}

// Create godoc
// @Summary      Criar usuário
// @Tags         usuarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UserCreateRequest  true  "username, password, is_admin"
// @Success      200   {object}  dto.OkResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/usuarios [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.UserCreateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validator.Message(errs)})
	}
	if err := h.uc.CriarUsuario(c.Context(), in); err != nil {
		if errors.Is(err, domain.ErrUsuarioDuplicado) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "DUPLICATE_USERNAME", Message: "Usuário já existe"})
		}
		if errors.Is(err, domain.ErrDadosInvalidos) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados inválidos"})
		}
		return internalError(c, err)
	}
	return c.JSON(dto.OkResponse{Ok: true})
}

// Delete godoc
// @Summary      Excluir usuário (auto-exclusão sempre negada)
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "id do usuário"
// @Success      200  {object}  dto.OkResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/usuarios/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	targetID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	if err := h.uc.ExcluirUsuario(c.Context(), GetUserID(c), targetID); err != nil {
		if errors.Is(err, domain.ErrAutoExclusao) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "SELF_DELETE", Message: "Não é possível excluir o próprio usuário"})
		}
		return internalError(c, err)
	}
	return c.JSON(dto.OkResponse{Ok: true})
}
