package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/seu-usuario/estoque-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas read-only para os contadores e a série do dashboard.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository constrói o adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// CountItens conta os itens cadastrados no catálogo.
func (r *AnalyticsRepo) CountItens(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM itens`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("analytics.CountItens: %w", err)
	}
	return n, nil
}

// CountAlertas conta as linhas do razão em alerta de estoque baixo
// (saldo derivado <= mínimo; mínimo nulo conta como zero).
func (r *AnalyticsRepo) CountAlertas(ctx context.Context) (int64, error) {
	const query = `
	SELECT COUNT(*)
	FROM estoque
	WHERE (entradas - saidas) <= COALESCE(estoque_minimo, 0)`
	var n int64
	if err := r.pool.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("analytics.CountAlertas: %w", err)
	}
	return n, nil
}

// CountMovimentosPorData conta entradas + saídas datadas do dia informado.
func (r *AnalyticsRepo) CountMovimentosPorData(ctx context.Context, dia time.Time) (int64, error) {
	const query = `
	SELECT
	    (SELECT COUNT(*) FROM entradas WHERE data = $1) +
	    (SELECT COUNT(*) FROM saidas   WHERE data = $1)`
	var n int64
	if err := r.pool.QueryRow(ctx, query, dataTruncada(dia)).Scan(&n); err != nil {
		return 0, fmt.Errorf("analytics.CountMovimentosPorData: %w", err)
	}
	return n, nil
}

// TotaisPorDia soma as quantidades movimentadas por dia no intervalo [de, ate],
// uma consulta agrupada por tabela. Dias sem movimento simplesmente não
// aparecem no mapa; o caso de uso preenche com zero.
func (r *AnalyticsRepo) TotaisPorDia(ctx context.Context, de, ate time.Time) (entradas, saidas repository.TotaisDiarios, err error) {
	entradas, err = r.totaisPorDia(ctx, tabelaEntradas, de, ate)
	if err != nil {
		return nil, nil, err
	}
	saidas, err = r.totaisPorDia(ctx, tabelaSaidas, de, ate)
	if err != nil {
		return nil, nil, err
	}
	return entradas, saidas, nil
}

func (r *AnalyticsRepo) totaisPorDia(ctx context.Context, tabela string, de, ate time.Time) (repository.TotaisDiarios, error) {
	query := fmt.Sprintf(`
	SELECT data, COALESCE(SUM(quantidade), 0)
	FROM %s
	WHERE data BETWEEN $1 AND $2
	GROUP BY data`, tabela)

	rows, err := r.pool.Query(ctx, query, dataTruncada(de), dataTruncada(ate))
	if err != nil {
		return nil, fmt.Errorf("analytics.TotaisPorDia %s: %w", tabela, err)
	}
	defer rows.Close()

	totais := make(repository.TotaisDiarios)
	for rows.Next() {
		var dia time.Time
		var soma int64
		if err := rows.Scan(&dia, &soma); err != nil {
			return nil, fmt.Errorf("analytics.TotaisPorDia scan %s: %w", tabela, err)
		}
		totais[dia.Format("2006-01-02")] = soma
	}
	return totais, rows.Err()
}

// dataTruncada zera a parte de hora para casar com a coluna DATE.
func dataTruncada(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
