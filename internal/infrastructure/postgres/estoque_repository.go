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

var _ repository.EstoqueRepository = (*EstoqueRepo)(nil)

// EstoqueRepo implementação do razão de estoque sobre PostgreSQL (usável com pool ou tx).
// O saldo nunca é persistido; só os contadores acumulados.
type EstoqueRepo struct {
	q Querier
}

// NewEstoqueRepository constrói o adaptador do razão. Passar pool ou tx (Querier).
func NewEstoqueRepository(q Querier) *EstoqueRepo {
	return &EstoqueRepo{q: q}
}

const estoqueCols = `cod, descricao, unid, entradas, saidas, COALESCE(estoque_minimo, 0)`

// Create insere a linha do razão de um item recém-cadastrado (contadores zerados).
func (r *EstoqueRepo) Create(ctx context.Context, row *entity.Estoque) error {
	query := `
		INSERT INTO estoque (cod, descricao, unid, entradas, saidas, estoque_minimo)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, row.Cod, row.Descricao, row.Unid, row.Entradas, row.Saidas, row.EstoqueMinimo)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCodigoDuplicado
		}
		return fmt.Errorf("insert estoque: %w", err)
	}
	return nil
}

// GetByCod obtém a linha do razão; (nil, nil) se não existe.
func (r *EstoqueRepo) GetByCod(ctx context.Context, cod string) (*entity.Estoque, error) {
	query := `SELECT ` + estoqueCols + ` FROM estoque WHERE cod = $1`
	return r.scanRow(r.q.QueryRow(ctx, query, cod))
}

// GetByCodForUpdate obtém a linha bloqueando-a para update (SELECT FOR UPDATE).
// Serializa mutações concorrentes do mesmo cod; só faz sentido dentro de tx.
func (r *EstoqueRepo) GetByCodForUpdate(ctx context.Context, cod string) (*entity.Estoque, error) {
	query := `SELECT ` + estoqueCols + ` FROM estoque WHERE cod = $1 FOR UPDATE`
	return r.scanRow(r.q.QueryRow(ctx, query, cod))
}

func (r *EstoqueRepo) scanRow(row pgx.Row) (*entity.Estoque, error) {
	var e entity.Estoque
	err := row.Scan(&e.Cod, &e.Descricao, &e.Unid, &e.Entradas, &e.Saidas, &e.EstoqueMinimo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get estoque: %w", err)
	}
	return &e, nil
}

// AddEntradas incrementa o contador de entradas.
func (r *EstoqueRepo) AddEntradas(ctx context.Context, cod string, qtd int64) error {
	_, err := r.q.Exec(ctx, `UPDATE estoque SET entradas = entradas + $1 WHERE cod = $2`, qtd, cod)
	if err != nil {
		return fmt.Errorf("update entradas: %w", err)
	}
	return nil
}

// AddSaidas incrementa o contador de saídas. A checagem de saldo acontece no
// caso de uso com a fila bloqueada; aqui é só o incremento.
func (r *EstoqueRepo) AddSaidas(ctx context.Context, cod string, qtd int64) error {
	_, err := r.q.Exec(ctx, `UPDATE estoque SET saidas = saidas + $1 WHERE cod = $2`, qtd, cod)
	if err != nil {
		return fmt.Errorf("update saidas: %w", err)
	}
	return nil
}

// List devolve o razão completo ordenado por cod.
func (r *EstoqueRepo) List(ctx context.Context) ([]*entity.Estoque, error) {
	query := `SELECT ` + estoqueCols + ` FROM estoque ORDER BY cod`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list estoque: %w", err)
	}
	defer rows.Close()
	var list []*entity.Estoque
	for rows.Next() {
		var e entity.Estoque
		if err := rows.Scan(&e.Cod, &e.Descricao, &e.Unid, &e.Entradas, &e.Saidas, &e.EstoqueMinimo); err != nil {
			return nil, fmt.Errorf("scan estoque: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
