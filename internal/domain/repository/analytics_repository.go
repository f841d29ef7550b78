package repository

import (
	"context"
	"time"
)

// TotaisDiarios soma de quantidades por dia, chaveado por data ISO (2006-01-02).
type TotaisDiarios map[string]int64

// AnalyticsRepository consultas read-only para o dashboard.
type AnalyticsRepository interface {
	CountItens(ctx context.Context) (int64, error)
	// CountAlertas conta linhas do razão com (entradas - saidas) <= estoque_minimo.
	CountAlertas(ctx context.Context) (int64, error)
	// CountMovimentosPorData conta entradas + saídas registradas no dia.
	CountMovimentosPorData(ctx context.Context, dia time.Time) (int64, error)
	// TotaisPorDia soma as quantidades movimentadas por dia no intervalo [de, ate].
	TotaisPorDia(ctx context.Context, de, ate time.Time) (entradas, saidas TotaisDiarios, err error)
}
