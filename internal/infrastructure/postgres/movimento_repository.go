package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/seu-usuario/estoque-api/internal/domain/entity"
	"github.com/seu-usuario/estoque-api/internal/domain/repository"
)

var _ repository.MovimentoRepository = (*MovimentoRepo)(nil)

// Tabelas do log de movimentações. Nomes fixos, nunca vindos de input.
const (
	tabelaEntradas = "entradas"
	tabelaSaidas   = "saidas"
)

// MovimentoRepo implementação do log de movimentações sobre PostgreSQL
// (usável com pool ou tx). Entradas e saídas têm o mesmo formato em tabelas
// separadas; os helpers recebem o nome da tabela.
type MovimentoRepo struct {
	q Querier
}

// NewMovimentoRepository constrói o adaptador do log. Passar pool ou tx (Querier).
func NewMovimentoRepository(q Querier) *MovimentoRepo {
	return &MovimentoRepo{q: q}
}

// CreateEntrada registra um movimento de entrada (append-only).
func (r *MovimentoRepo) CreateEntrada(ctx context.Context, m *entity.Movimento) error {
	return r.create(ctx, tabelaEntradas, m)
}

// CreateSaida registra um movimento de saída (append-only).
func (r *MovimentoRepo) CreateSaida(ctx context.Context, m *entity.Movimento) error {
	return r.create(ctx, tabelaSaidas, m)
}

func (r *MovimentoRepo) create(ctx context.Context, tabela string, m *entity.Movimento) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (cod, descricao, unid, quantidade, data)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`, tabela)
	err := r.q.QueryRow(ctx, query, m.Cod, m.Descricao, m.Unid, m.Quantidade, m.Data).Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("insert %s: %w", tabela, err)
	}
	return nil
}

// ListRecentEntradas devolve as entradas mais recentes (data DESC, id DESC).
func (r *MovimentoRepo) ListRecentEntradas(ctx context.Context, limit int) ([]*entity.Movimento, error) {
	return r.listRecent(ctx, tabelaEntradas, limit)
}

// ListRecentSaidas devolve as saídas mais recentes (data DESC, id DESC).
func (r *MovimentoRepo) ListRecentSaidas(ctx context.Context, limit int) ([]*entity.Movimento, error) {
	return r.listRecent(ctx, tabelaSaidas, limit)
}

func (r *MovimentoRepo) listRecent(ctx context.Context, tabela string, limit int) ([]*entity.Movimento, error) {
	query := fmt.Sprintf(`
		SELECT id, cod, descricao, unid, quantidade, data
		FROM %s ORDER BY data DESC, id DESC LIMIT $1`, tabela)
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", tabela, err)
	}
	defer rows.Close()
	return scanMovimentos(rows, tabela)
}

// ListAllEntradas devolve o histórico completo de entradas (data DESC), para exportação.
func (r *MovimentoRepo) ListAllEntradas(ctx context.Context) ([]*entity.Movimento, error) {
	return r.listAll(ctx, tabelaEntradas)
}

// ListAllSaidas devolve o histórico completo de saídas (data DESC), para exportação.
func (r *MovimentoRepo) ListAllSaidas(ctx context.Context) ([]*entity.Movimento, error) {
	return r.listAll(ctx, tabelaSaidas)
}

func (r *MovimentoRepo) listAll(ctx context.Context, tabela string) ([]*entity.Movimento, error) {
	query := fmt.Sprintf(`
		SELECT id, cod, descricao, unid, quantidade, data
		FROM %s ORDER BY data DESC, id DESC`, tabela)
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list all %s: %w", tabela, err)
	}
	defer rows.Close()
	return scanMovimentos(rows, tabela)
}

func scanMovimentos(rows pgx.Rows, tabela string) ([]*entity.Movimento, error) {
	var list []*entity.Movimento
	for rows.Next() {
		var m entity.Movimento
		if err := rows.Scan(&m.ID, &m.Cod, &m.Descricao, &m.Unid, &m.Quantidade, &m.Data); err != nil {
			return nil, fmt.Errorf("scan %s: %w", tabela, err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
