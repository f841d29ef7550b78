package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seu-usuario/estoque-api/internal/domain/repository"
)

// fakeAnalyticsRepo devolve valores fixos para as consultas do dashboard.
type fakeAnalyticsRepo struct {
	totalItens int64
	alertas    int64
	movPorDia  map[string]int64
	entradas   repository.TotaisDiarios
	saidas     repository.TotaisDiarios
}

func (f *fakeAnalyticsRepo) CountItens(_ context.Context) (int64, error) {
	return f.totalItens, nil
}

func (f *fakeAnalyticsRepo) CountAlertas(_ context.Context) (int64, error) {
	return f.alertas, nil
}

func (f *fakeAnalyticsRepo) CountMovimentosPorData(_ context.Context, dia time.Time) (int64, error) {
	return f.movPorDia[dia.Format("2006-01-02")], nil
}

func (f *fakeAnalyticsRepo) TotaisPorDia(_ context.Context, _, _ time.Time) (repository.TotaisDiarios, repository.TotaisDiarios, error) {
	return f.entradas, f.saidas, nil
}

func TestGetStats_SerieDeSeteDias(t *testing.T) {
	// Relógio fixo: 2026-08-28. A janela vai de 22/08 a 28/08.
	agora := func() time.Time {
		return time.Date(2026, 8, 28, 15, 30, 0, 0, time.UTC)
	}
	repo := &fakeAnalyticsRepo{
		totalItens: 4,
		alertas:    2,
		movPorDia:  map[string]int64{"2026-08-28": 3},
		entradas: repository.TotaisDiarios{
			"2026-08-22": 10,
			"2026-08-28": 5,
		},
		saidas: repository.TotaisDiarios{
			"2026-08-25": 7,
		},
	}
	uc := NewDashboardUseCaseComRelogio(repo, agora)

	stats, err := uc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(4), stats.TotalItens)
	assert.Equal(t, int64(2), stats.Alertas)
	assert.Equal(t, int64(3), stats.MovHoje)

	// Sempre 7 posições, do dia mais antigo para hoje, rotuladas DD/MM.
	assert.Equal(t, []string{"22/08", "23/08", "24/08", "25/08", "26/08", "27/08", "28/08"}, stats.Chart.Labels)

	// Dias sem movimento entram com zero.
	assert.Equal(t, []int64{10, 0, 0, 0, 0, 0, 5}, stats.Chart.Entrada)
	assert.Equal(t, []int64{0, 0, 0, 7, 0, 0, 0}, stats.Chart.Saida)
}

func TestGetStats_SemMovimentos(t *testing.T) {
	agora := func() time.Time {
		return time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC)
	}
	uc := NewDashboardUseCaseComRelogio(&fakeAnalyticsRepo{}, agora)

	stats, err := uc.GetStats(context.Background())
	require.NoError(t, err)

	require.Len(t, stats.Chart.Labels, 7)
	// A janela atravessa a virada do ano: 28/12 a 03/01.
	assert.Equal(t, "28/12", stats.Chart.Labels[0])
	assert.Equal(t, "03/01", stats.Chart.Labels[6])
	assert.Equal(t, []int64{0, 0, 0, 0, 0, 0, 0}, stats.Chart.Entrada)
	assert.Equal(t, []int64{0, 0, 0, 0, 0, 0, 0}, stats.Chart.Saida)
}
