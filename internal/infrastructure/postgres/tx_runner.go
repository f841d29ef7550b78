package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/seu-usuario/estoque-api/internal/application/catalog"
	"github.com/seu-usuario/estoque-api/internal/application/estoque"
	"github.com/seu-usuario/estoque-api/internal/domain/repository"
)

// Garante que TxRunner implementa os portos dos casos de uso.
var _ estoque.TxRunner = (*TxRunner)(nil)
var _ catalog.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia uma transação, executa fn com os repos do razão atados à tx e
// faz Commit ou Rollback. Usado por entrada/saída: movimento + contador
// entram como unidade atômica.
func (r *TxRunner) Run(ctx context.Context, fn func(
	estoqueRepo repository.EstoqueRepository,
	movRepo repository.MovimentoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	estoqueRepo := NewEstoqueRepository(tx)
	movRepo := NewMovimentoRepository(tx)

	if err := fn(estoqueRepo, movRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunCatalog inicia uma transação com os repos de catálogo e razão (para o
// registro de item: as duas linhas nascem juntas ou nenhuma nasce).
func (r *TxRunner) RunCatalog(ctx context.Context, fn func(
	itemRepo repository.ItemRepository,
	estoqueRepo repository.EstoqueRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	itemRepo := NewItemRepository(tx)
	estoqueRepo := NewEstoqueRepository(tx)

	if err := fn(itemRepo, estoqueRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
