package repository

import (
	"context"

	"github.com/seu-usuario/estoque-api/internal/domain/entity"
)

// EstoqueRepository define o porto para a linha do razão de estoque.
// Usado dentro de transações para garantir consistência dos contadores.
type EstoqueRepository interface {
	Create(ctx context.Context, row *entity.Estoque) error
	GetByCod(ctx context.Context, cod string) (*entity.Estoque, error)
	// GetByCodForUpdate bloqueia a fila para update (SELECT FOR UPDATE);
	// só faz sentido dentro de uma transação.
	GetByCodForUpdate(ctx context.Context, cod string) (*entity.Estoque, error)
	AddEntradas(ctx context.Context, cod string, qtd int64) error
	AddSaidas(ctx context.Context, cod string, qtd int64) error
	List(ctx context.Context) ([]*entity.Estoque, error)
}
