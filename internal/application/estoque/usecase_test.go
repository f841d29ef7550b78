package estoque

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seu-usuario/estoque-api/internal/application/dto"
	"github.com/seu-usuario/estoque-api/internal/domain"
	"github.com/seu-usuario/estoque-api/internal/domain/entity"
	"github.com/seu-usuario/estoque-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

// fakeEstoqueRepo razão em memória chaveado por cod.
type fakeEstoqueRepo struct {
	rows map[string]*entity.Estoque
}

func newFakeEstoqueRepo(rows ...*entity.Estoque) *fakeEstoqueRepo {
	m := make(map[string]*entity.Estoque)
	for _, r := range rows {
		m[r.Cod] = r
	}
	return &fakeEstoqueRepo{rows: m}
}

func (f *fakeEstoqueRepo) Create(_ context.Context, row *entity.Estoque) error {
	f.rows[row.Cod] = row
	return nil
}

func (f *fakeEstoqueRepo) GetByCod(_ context.Context, cod string) (*entity.Estoque, error) {
	r, ok := f.rows[cod]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (f *fakeEstoqueRepo) GetByCodForUpdate(ctx context.Context, cod string) (*entity.Estoque, error) {
	return f.GetByCod(ctx, cod)
}

func (f *fakeEstoqueRepo) AddEntradas(_ context.Context, cod string, qtd int64) error {
	f.rows[cod].Entradas += qtd
	return nil
}

func (f *fakeEstoqueRepo) AddSaidas(_ context.Context, cod string, qtd int64) error {
	f.rows[cod].Saidas += qtd
	return nil
}

func (f *fakeEstoqueRepo) List(_ context.Context) ([]*entity.Estoque, error) {
	out := make([]*entity.Estoque, 0, len(f.rows))
	for _, r := range f.rows {
		cp := *r
		out = append(out, &cp)
	}
	return out, nil
}

// fakeMovRepo log de movimentações em memória.
type fakeMovRepo struct {
	entradas []*entity.Movimento
	saidas   []*entity.Movimento
}

func (f *fakeMovRepo) CreateEntrada(_ context.Context, m *entity.Movimento) error {
	m.ID = int64(len(f.entradas) + 1)
	f.entradas = append(f.entradas, m)
	return nil
}

func (f *fakeMovRepo) CreateSaida(_ context.Context, m *entity.Movimento) error {
	m.ID = int64(len(f.saidas) + 1)
	f.saidas = append(f.saidas, m)
	return nil
}

func (f *fakeMovRepo) ListRecentEntradas(_ context.Context, limit int) ([]*entity.Movimento, error) {
	if len(f.entradas) > limit {
		return f.entradas[:limit], nil
	}
	return f.entradas, nil
}

func (f *fakeMovRepo) ListRecentSaidas(_ context.Context, limit int) ([]*entity.Movimento, error) {
	if len(f.saidas) > limit {
		return f.saidas[:limit], nil
	}
	return f.saidas, nil
}

func (f *fakeMovRepo) ListAllEntradas(_ context.Context) ([]*entity.Movimento, error) {
	return f.entradas, nil
}

func (f *fakeMovRepo) ListAllSaidas(_ context.Context) ([]*entity.Movimento, error) {
	return f.saidas, nil
}

// fakeTxRunner executa a função diretamente com os repos dados. Se a função
// falha, desfaz as mutações restaurando o snapshot do razão (simula rollback).
type fakeTxRunner struct {
	estoqueRepo *fakeEstoqueRepo
	movRepo     *fakeMovRepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(repository.EstoqueRepository, repository.MovimentoRepository) error) error {
	snapshot := make(map[string]entity.Estoque, len(f.estoqueRepo.rows))
	for cod, r := range f.estoqueRepo.rows {
		snapshot[cod] = *r
	}
	movsEntradas := len(f.movRepo.entradas)
	movsSaidas := len(f.movRepo.saidas)

	if err := fn(f.estoqueRepo, f.movRepo); err != nil {
		for cod := range f.estoqueRepo.rows {
			orig := snapshot[cod]
			f.estoqueRepo.rows[cod] = &orig
		}
		f.movRepo.entradas = f.movRepo.entradas[:movsEntradas]
		f.movRepo.saidas = f.movRepo.saidas[:movsSaidas]
		return err
	}
	return nil
}

// fakeNotifier captura as publicações do caso de uso.
type fakeNotifier struct {
	topics   []string
	payloads []any
}

func (f *fakeNotifier) Publish(topic string, payload any) {
	f.topics = append(f.topics, topic)
	f.payloads = append(f.payloads, payload)
}

func buildUseCase(rows ...*entity.Estoque) (*UseCase, *fakeEstoqueRepo, *fakeMovRepo, *fakeNotifier) {
	estoqueRepo := newFakeEstoqueRepo(rows...)
	movRepo := &fakeMovRepo{}
	notifier := &fakeNotifier{}
	tx := &fakeTxRunner{estoqueRepo: estoqueRepo, movRepo: movRepo}
	return NewUseCase(tx, estoqueRepo, movRepo, notifier), estoqueRepo, movRepo, notifier
}

func linhaRazao(cod string, minimo int64) *entity.Estoque {
	return &entity.Estoque{Cod: cod, Descricao: "ALCOOL 70%", Unid: "LITRO", EstoqueMinimo: minimo}
}

// ──────────────────────────────────────────────────────────────────────────────
// Entradas
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrarEntrada_SomaContadorEGravaMovimento(t *testing.T) {
	uc, estoqueRepo, movRepo, notifier := buildUseCase(linhaRazao("MMH09", 20))

	err := uc.RegistrarEntrada(context.Background(), dto.MovimentoRequest{
		Cod: "mmh09", Qtd: 50, Data: "2026-08-20",
	})
	require.NoError(t, err)

	row := estoqueRepo.rows["MMH09"]
	assert.Equal(t, int64(50), row.Entradas)
	assert.Equal(t, int64(50), row.Saldo())

	// O movimento carrega o snapshot de descricao/unid do razão.
	require.Len(t, movRepo.entradas, 1)
	mov := movRepo.entradas[0]
	assert.Equal(t, "MMH09", mov.Cod, "cod deve ser normalizado para maiúsculas")
	assert.Equal(t, "ALCOOL 70%", mov.Descricao)
	assert.Equal(t, "LITRO", mov.Unid)
	assert.Equal(t, int64(50), mov.Quantidade)

	require.Len(t, notifier.topics, 1)
	assert.Equal(t, TopicoEstoque, notifier.topics[0])
	assert.Equal(t, dto.EstoqueEvent{Message: "entrada_registrada"}, notifier.payloads[0])
}

func TestRegistrarEntrada_ItemInexistente(t *testing.T) {
	uc, _, movRepo, notifier := buildUseCase()

	err := uc.RegistrarEntrada(context.Background(), dto.MovimentoRequest{
		Cod: "ZZ99", Qtd: 5, Data: "2026-08-20",
	})
	assert.ErrorIs(t, err, domain.ErrItemNaoEncontrado)
	assert.Empty(t, movRepo.entradas, "nada deve ser gravado")
	assert.Empty(t, notifier.topics, "falha não publica notificação")
}

func TestRegistrarEntrada_DadosInvalidos(t *testing.T) {
	uc, _, _, notifier := buildUseCase(linhaRazao("MD01", 10))

	casos := []dto.MovimentoRequest{
		{Cod: "", Qtd: 5, Data: "2026-08-20"},
		{Cod: "MD01", Qtd: 0, Data: "2026-08-20"},
		{Cod: "MD01", Qtd: -3, Data: "2026-08-20"},
		{Cod: "MD01", Qtd: 5, Data: "20/08/2026"},
	}
	for _, in := range casos {
		err := uc.RegistrarEntrada(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrDadosInvalidos, "request %+v", in)
	}
	assert.Empty(t, notifier.topics)
}

// ──────────────────────────────────────────────────────────────────────────────
// Saídas
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrarSaida_DebitaSaldo(t *testing.T) {
	row := linhaRazao("MMH09", 5)
	row.Entradas = 20
	uc, estoqueRepo, movRepo, notifier := buildUseCase(row)

	err := uc.RegistrarSaida(context.Background(), dto.MovimentoRequest{
		Cod: "MMH09", Qtd: 16, Data: "2026-08-21",
	})
	require.NoError(t, err)

	got := estoqueRepo.rows["MMH09"]
	assert.Equal(t, int64(4), got.Saldo())
	assert.True(t, got.AlertaBaixo(), "saldo 4 <= mínimo 5 deve alertar")
	require.Len(t, movRepo.saidas, 1)
	require.Len(t, notifier.payloads, 1)
	assert.Equal(t, dto.EstoqueEvent{Message: "saida_registrada"}, notifier.payloads[0])
}

func TestRegistrarSaida_SaldoInsuficiente(t *testing.T) {
	row := linhaRazao("MMH09", 5)
	row.Entradas = 20
	row.Saidas = 16
	uc, estoqueRepo, movRepo, notifier := buildUseCase(row)

	err := uc.RegistrarSaida(context.Background(), dto.MovimentoRequest{
		Cod: "MMH09", Qtd: 10, Data: "2026-08-22",
	})

	var saldoErr *domain.SaldoInsuficienteError
	require.ErrorAs(t, err, &saldoErr)
	assert.Equal(t, int64(4), saldoErr.Saldo)
	assert.Equal(t, "Saldo insuficiente (4)", err.Error(),
		"a mensagem deve carregar o saldo atual")

	// Nada pode ter sido gravado: nem movimento, nem contador.
	got := estoqueRepo.rows["MMH09"]
	assert.Equal(t, int64(16), got.Saidas)
	assert.Empty(t, movRepo.saidas)
	assert.Empty(t, notifier.topics)
}

func TestRegistrarSaida_SaldoExato(t *testing.T) {
	row := linhaRazao("MD02", 10)
	row.Entradas = 7
	uc, estoqueRepo, _, _ := buildUseCase(row)

	// qtd == saldo é permitido; só qtd > saldo falha.
	err := uc.RegistrarSaida(context.Background(), dto.MovimentoRequest{
		Cod: "MD02", Qtd: 7, Data: "2026-08-22",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), estoqueRepo.rows["MD02"].Saldo())
}

// Cenário completo: entrada, saída com alerta, saída recusada.
func TestCicloDeVida_EntradaSaidaAlerta(t *testing.T) {
	uc, estoqueRepo, _, _ := buildUseCase(linhaRazao("MD10", 5))
	ctx := context.Background()

	require.NoError(t, uc.RegistrarEntrada(ctx, dto.MovimentoRequest{Cod: "MD10", Qtd: 20, Data: "2026-08-01"}))
	assert.Equal(t, int64(20), estoqueRepo.rows["MD10"].Saldo())
	assert.False(t, estoqueRepo.rows["MD10"].AlertaBaixo())

	require.NoError(t, uc.RegistrarSaida(ctx, dto.MovimentoRequest{Cod: "MD10", Qtd: 16, Data: "2026-08-02"}))
	assert.Equal(t, int64(4), estoqueRepo.rows["MD10"].Saldo())
	assert.True(t, estoqueRepo.rows["MD10"].AlertaBaixo())

	err := uc.RegistrarSaida(ctx, dto.MovimentoRequest{Cod: "MD10", Qtd: 10, Data: "2026-08-03"})
	require.Error(t, err)
	assert.Equal(t, "Saldo insuficiente (4)", err.Error())
	assert.Equal(t, int64(4), estoqueRepo.rows["MD10"].Saldo(), "a saída recusada não muda o saldo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Projeções de leitura
// ──────────────────────────────────────────────────────────────────────────────

func TestListarEstoque_DerivaSaldoEAlerta(t *testing.T) {
	row := linhaRazao("MD03", 5)
	row.Entradas = 8
	row.Saidas = 3
	uc, _, _, _ := buildUseCase(row)

	out, err := uc.ListarEstoque(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, int64(5), out[0].Saldo)
	assert.True(t, out[0].AlertaBaixo, "saldo 5 == mínimo 5 deve alertar")
}

func TestListarMovimentacoes_LimitaVinte(t *testing.T) {
	uc, _, movRepo, _ := buildUseCase(linhaRazao("MD01", 10))
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		require.NoError(t, movRepo.CreateEntrada(ctx, &entity.Movimento{Cod: "MD01", Quantidade: 1}))
	}
	require.NoError(t, movRepo.CreateSaida(ctx, &entity.Movimento{Cod: "MD01", Quantidade: 1}))

	out, err := uc.ListarMovimentacoes(ctx)
	require.NoError(t, err)
	assert.Len(t, out.Entradas, LimiteMovimentacoes)
	assert.Len(t, out.Saidas, 1)
}
