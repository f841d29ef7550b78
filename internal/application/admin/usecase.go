// Package admin contém os casos de uso de administração de usuários.
// A exigência de flag de admin do chamador é aplicada no middleware HTTP
// (RequireAdmin), que materializa o AuthContext a partir do token.
package admin

import (
	"context"

	"github.com/seu-usuario/estoque-api/internal/application/dto"
	"github.com/seu-usuario/estoque-api/internal/domain"
	"github.com/seu-usuario/estoque-api/internal/domain/entity"
	"github.com/seu-usuario/estoque-api/internal/domain/repository"
	"github.com/seu-usuario/estoque-api/pkg/hash"
)

// UserUseCase casos de uso de criação, listagem e exclusão de usuários.
type UserUseCase struct {
	userRepo repository.UserRepository
}

// NewUserUseCase constrói o caso de uso.
func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

// CriarUsuario persiste um usuário novo armazenando apenas o digest da senha.
// Username duplicado vira ErrUsuarioDuplicado (constraint de unicidade é o
// sinal autoritativo, sem pré-consulta).
func (uc *UserUseCase) CriarUsuario(ctx context.Context, in dto.UserCreateRequest) error {
	if in.Username == "" || in.Password == "" {
		return domain.ErrDadosInvalidos
	}
	user := &entity.User{
		Username:     in.Username,
		PasswordHash: hash.Digest(in.Password),
		IsAdmin:      in.IsAdmin,
	}
	return uc.userRepo.Create(ctx, user)
}

// ListarUsuarios devolve os usuários sem o digest de senha.
func (uc *UserUseCase) ListarUsuarios(ctx context.Context) ([]dto.UserDTO, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserDTO{ID: u.ID, Username: u.Username, IsAdmin: u.IsAdmin})
	}
	return out, nil
}

// ExcluirUsuario remove um usuário. Excluir a si próprio é sempre proibido,
// independente de flag de admin.
func (uc *UserUseCase) ExcluirUsuario(ctx context.Context, callerID, targetID int64) error {
	if callerID == targetID {
		return domain.ErrAutoExclusao
	}
	return uc.userRepo.Delete(ctx, targetID)
}
