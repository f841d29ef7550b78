package repository

import (
	"context"

	"github.com/seu-usuario/estoque-api/internal/domain/entity"
)

// MovimentoRepository define o porto do log de movimentações (append-only).
// Entradas e saídas vivem em tabelas separadas com o mesmo formato.
type MovimentoRepository interface {
	CreateEntrada(ctx context.Context, m *entity.Movimento) error
	CreateSaida(ctx context.Context, m *entity.Movimento) error
	// ListRecent* devolvem os registros mais recentes, ORDER BY data DESC, id DESC.
	ListRecentEntradas(ctx context.Context, limit int) ([]*entity.Movimento, error)
	ListRecentSaidas(ctx context.Context, limit int) ([]*entity.Movimento, error)
	// ListAll* devolvem o histórico completo para exportação, ORDER BY data DESC.
	ListAllEntradas(ctx context.Context) ([]*entity.Movimento, error)
	ListAllSaidas(ctx context.Context) ([]*entity.Movimento, error)
}
