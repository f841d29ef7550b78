// Package analytics contém o caso de uso do dashboard de estoque.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/seu-usuario/estoque-api/internal/application/dto"
	"github.com/seu-usuario/estoque-api/internal/domain/repository"
)

// diasGrafico janela da série do gráfico (hoje inclusive).
const diasGrafico = 7

// DashboardUseCase monta os contadores e a série de 7 dias do dashboard.
//
// Fonte de dados: AnalyticsRepository (consultas read-only). Não acessa as
// tabelas diretamente; delega tudo ao repositório.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	// agora permite fixar o relógio nos testes; nil usa time.Now.
	agora func() time.Time
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, agora: time.Now}
}

// NewDashboardUseCaseComRelogio versão com relógio injetado (testes).
func NewDashboardUseCaseComRelogio(analyticsRepo repository.AnalyticsRepository, agora func() time.Time) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, agora: agora}
}

// GetStats constrói o DashboardStatsDTO.
//
// Quatro consultas, três delas em paralelo:
//  1. CountItens            → total_itens
//  2. CountAlertas          → alertas (saldo <= mínimo)
//  3. CountMovimentosPorData(hoje) → mov_hoje
//  4. TotaisPorDia(janela de 7 dias) → chart
//
// A série tem sempre 7 posições, do dia mais antigo para hoje, rotuladas
// DD/MM; dias sem movimento entram com zero.
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	hoje := uc.agora()
	inicio := hoje.AddDate(0, 0, -(diasGrafico - 1))

	type countResult struct {
		n   int64
		err error
	}
	totalCh := make(chan countResult, 1)
	alertasCh := make(chan countResult, 1)
	movHojeCh := make(chan countResult, 1)

	go func() {
		n, err := uc.analyticsRepo.CountItens(ctx)
		totalCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountAlertas(ctx)
		alertasCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountMovimentosPorData(ctx, hoje)
		movHojeCh <- countResult{n, err}
	}()

	total := <-totalCh
	alertas := <-alertasCh
	movHoje := <-movHojeCh

	if total.err != nil {
		return nil, fmt.Errorf("dashboard: total de itens: %w", total.err)
	}
	if alertas.err != nil {
		return nil, fmt.Errorf("dashboard: alertas: %w", alertas.err)
	}
	if movHoje.err != nil {
		return nil, fmt.Errorf("dashboard: movimentos de hoje: %w", movHoje.err)
	}

	entradas, saidas, err := uc.analyticsRepo.TotaisPorDia(ctx, inicio, hoje)
	if err != nil {
		return nil, fmt.Errorf("dashboard: totais por dia: %w", err)
	}

	chart := dto.ChartDTO{
		Labels:  make([]string, 0, diasGrafico),
		Entrada: make([]int64, 0, diasGrafico),
		Saida:   make([]int64, 0, diasGrafico),
	}
	for i := diasGrafico - 1; i >= 0; i-- {
		d := hoje.AddDate(0, 0, -i)
		chave := d.Format("2006-01-02")
		chart.Labels = append(chart.Labels, d.Format("02/01"))
		chart.Entrada = append(chart.Entrada, entradas[chave])
		chart.Saida = append(chart.Saida, saidas[chave])
	}

	return &dto.DashboardStatsDTO{
		TotalItens: total.n,
		Alertas:    alertas.n,
		MovHoje:    movHoje.n,
		Chart:      chart,
	}, nil
}
