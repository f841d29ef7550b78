package auth

import (
	"context"

	"github.com/seu-usuario/estoque-api/internal/application/dto"
	"github.com/seu-usuario/estoque-api/internal/domain"
	"github.com/seu-usuario/estoque-api/internal/domain/repository"
	"github.com/seu-usuario/estoque-api/pkg/hash"
	"github.com/seu-usuario/estoque-api/pkg/jwt"
)

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticação (login).
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica username/senha, gera JWT e retorna token + usuário.
// Falha sempre com ErrCredenciaisInvalidas, sem distinguir usuário inexistente
// de senha incorreta, para não vazar qual dos dois está errado.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || !hash.Check(user.PasswordHash, in.Password) {
		return nil, domain.ErrCredenciaisInvalidas
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.IsAdmin, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  dto.UserDTO{ID: user.ID, Username: user.Username, IsAdmin: user.IsAdmin},
	}, nil
}
