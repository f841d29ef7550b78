package repository

import (
	"context"

	"github.com/seu-usuario/estoque-api/internal/domain/entity"
)

// UserRepository define o porto de persistência para User (DIP).
// Get* devolvem (nil, nil) quando não há registro.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	Delete(ctx context.Context, id int64) error
}
