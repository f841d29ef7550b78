package repository

import (
	"context"

	"github.com/seu-usuario/estoque-api/internal/domain/entity"
)

// ItemRepository define o porto de persistência do catálogo de itens.
// Create devolve domain.ErrCodigoDuplicado em violação de unicidade do cod.
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByCod(ctx context.Context, cod string) (*entity.Item, error)
	List(ctx context.Context) ([]*entity.Item, error)
}
