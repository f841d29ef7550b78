package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/seu-usuario/estoque-api/internal/domain"
	"github.com/seu-usuario/estoque-api/internal/domain/entity"
	"github.com/seu-usuario/estoque-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementação do porto ItemRepository sobre PostgreSQL (usável com pool ou tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository constrói o adaptador do catálogo. Passar pool ou tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste um item novo. A violação da primary key em cod é o sinal
// autoritativo de código duplicado, inclusive sob registros concorrentes.
func (r *ItemRepo) Create(ctx context.Context, item *entity.Item) error {
	query := `
		INSERT INTO itens (cod, descricao, unid, estoque_minimo)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(ctx, query, item.Cod, item.Descricao, item.Unid, item.EstoqueMinimo)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCodigoDuplicado
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByCod obtém um item por cod; (nil, nil) se não existe.
func (r *ItemRepo) GetByCod(ctx context.Context, cod string) (*entity.Item, error) {
	query := `
		SELECT cod, descricao, unid, COALESCE(estoque_minimo, 0)
		FROM itens WHERE cod = $1`
	var it entity.Item
	err := r.q.QueryRow(ctx, query, cod).Scan(&it.Cod, &it.Descricao, &it.Unid, &it.EstoqueMinimo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &it, nil
}

// List devolve o catálogo completo ordenado por cod.
func (r *ItemRepo) List(ctx context.Context) ([]*entity.Item, error) {
	query := `
		SELECT cod, descricao, unid, COALESCE(estoque_minimo, 0)
		FROM itens ORDER BY cod`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list itens: %w", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(&it.Cod, &it.Descricao, &it.Unid, &it.EstoqueMinimo); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}
