package dto

// DashboardStatsDTO resposta de GET /api/dashboard.
type DashboardStatsDTO struct {
	TotalItens int64    `json:"total_itens"` // itens cadastrados no catálogo
	Alertas    int64    `json:"alertas"`     // linhas com saldo <= estoque mínimo
	MovHoje    int64    `json:"mov_hoje"`    // entradas + saídas datadas de hoje
	Chart      ChartDTO `json:"chart"`
}

// ChartDTO série dos últimos 7 dias, do mais antigo para o mais recente.
// Dias sem movimento contribuem com zero.
type ChartDTO struct {
	Labels  []string `json:"labels"`  // DD/MM
	Entrada []int64  `json:"entrada"` // soma de quantidades de entrada por dia
	Saida   []int64  `json:"saida"`   // soma de quantidades de saída por dia
}
