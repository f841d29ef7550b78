// Package estoque contém os casos de uso do razão de estoque: registro de
// entradas e saídas e as projeções de leitura.
package estoque

import (
	"context"
	"strings"
	"time"

	"github.com/seu-usuario/estoque-api/internal/application/dto"
	"github.com/seu-usuario/estoque-api/internal/domain"
	"github.com/seu-usuario/estoque-api/internal/domain/entity"
	"github.com/seu-usuario/estoque-api/internal/domain/repository"
)

// LimiteMovimentacoes máximo de registros por lado em GET /api/movimentacoes.
const LimiteMovimentacoes = 20

// TopicoEstoque tópico das notificações publicadas após cada mutação.
const TopicoEstoque = "estoque"

// FormatoData layout ISO da data dos movimentos.
const FormatoData = "2006-01-02"

// UseCase registra movimentos de forma transacional com bloqueio de fila
// (SELECT FOR UPDATE) e publica a notificação após o commit.
type UseCase struct {
	txRunner    TxRunner
	estoqueRepo repository.EstoqueRepository
	movRepo     repository.MovimentoRepository
	notifier    EventPublisher
}

// NewUseCase constrói o caso de uso do razão.
func NewUseCase(
	txRunner TxRunner,
	estoqueRepo repository.EstoqueRepository,
	movRepo repository.MovimentoRepository,
	notifier EventPublisher,
) *UseCase {
	return &UseCase{
		txRunner:    txRunner,
		estoqueRepo: estoqueRepo,
		movRepo:     movRepo,
		notifier:    notifier,
	}
}

// RegistrarEntrada soma qtd ao contador de entradas do item.
//
// Dentro de uma única transação: bloqueia a fila do razão, grava o movimento
// com snapshot de descricao/unid e incrementa o contador. Falha com
// ErrItemNaoEncontrado se o cod não existe no razão. Notifica após o commit.
func (uc *UseCase) RegistrarEntrada(ctx context.Context, in dto.MovimentoRequest) error {
	cod, data, err := uc.validar(in)
	if err != nil {
		return err
	}

	err = uc.txRunner.Run(ctx, func(
		estoqueRepo repository.EstoqueRepository,
		movRepo repository.MovimentoRepository,
	) error {
		row, err := estoqueRepo.GetByCodForUpdate(ctx, cod)
		if err != nil {
			return err
		}
		if row == nil {
			return domain.ErrItemNaoEncontrado
		}
		mov := &entity.Movimento{
			Cod:        cod,
			Descricao:  row.Descricao,
			Unid:       row.Unid,
			Quantidade: in.Qtd,
			Data:       data,
		}
		if err := movRepo.CreateEntrada(ctx, mov); err != nil {
			return err
		}
		return estoqueRepo.AddEntradas(ctx, cod, in.Qtd)
	})
	if err != nil {
		return err
	}

	uc.notifier.Publish(TopicoEstoque, dto.EstoqueEvent{Message: "entrada_registrada"})
	return nil
}

// RegistrarSaida subtrai qtd do saldo do item.
//
// A verificação de saldo e o incremento acontecem com a fila bloqueada na
// mesma transação, então duas saídas concorrentes não conseguem ler o mesmo
// saldo: não há oversell. Falha com SaldoInsuficienteError (carregando o
// saldo atual) quando qtd > saldo, sem gravar nada.
func (uc *UseCase) RegistrarSaida(ctx context.Context, in dto.MovimentoRequest) error {
	cod, data, err := uc.validar(in)
	if err != nil {
		return err
	}

	err = uc.txRunner.Run(ctx, func(
		estoqueRepo repository.EstoqueRepository,
		movRepo repository.MovimentoRepository,
	) error {
		row, err := estoqueRepo.GetByCodForUpdate(ctx, cod)
		if err != nil {
			return err
		}
		if row == nil {
			return domain.ErrItemNaoEncontrado
		}
		if in.Qtd > row.Saldo() {
			return &domain.SaldoInsuficienteError{Saldo: row.Saldo()}
		}
		mov := &entity.Movimento{
			Cod:        cod,
			Descricao:  row.Descricao,
			Unid:       row.Unid,
			Quantidade: in.Qtd,
			Data:       data,
		}
		if err := movRepo.CreateSaida(ctx, mov); err != nil {
			return err
		}
		return estoqueRepo.AddSaidas(ctx, cod, in.Qtd)
	})
	if err != nil {
		return err
	}

	uc.notifier.Publish(TopicoEstoque, dto.EstoqueEvent{Message: "saida_registrada"})
	return nil
}

func (uc *UseCase) validar(in dto.MovimentoRequest) (cod string, data time.Time, err error) {
	cod = strings.ToUpper(strings.TrimSpace(in.Cod))
	if cod == "" || in.Qtd <= 0 {
		return "", time.Time{}, domain.ErrDadosInvalidos
	}
	data, err = time.Parse(FormatoData, in.Data)
	if err != nil {
		return "", time.Time{}, domain.ErrDadosInvalidos
	}
	return cod, data, nil
}

// ListarEstoque devolve o razão completo com saldo derivado e flag de alerta.
// Sempre lê o banco: nada de cache, o saldo reflete o último commit.
func (uc *UseCase) ListarEstoque(ctx context.Context) ([]dto.EstoqueDTO, error) {
	rows, err := uc.estoqueRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EstoqueDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.EstoqueDTO{
			Cod:           r.Cod,
			Descricao:     r.Descricao,
			Unid:          r.Unid,
			Entradas:      r.Entradas,
			Saidas:        r.Saidas,
			EstoqueMinimo: r.EstoqueMinimo,
			Saldo:         r.Saldo(),
			AlertaBaixo:   r.AlertaBaixo(),
		})
	}
	return out, nil
}

// ListarMovimentacoes devolve as 20 entradas e 20 saídas mais recentes,
// ordenadas por data decrescente com desempate pelo id mais alto.
func (uc *UseCase) ListarMovimentacoes(ctx context.Context) (*dto.MovimentacoesDTO, error) {
	entradas, err := uc.movRepo.ListRecentEntradas(ctx, LimiteMovimentacoes)
	if err != nil {
		return nil, err
	}
	saidas, err := uc.movRepo.ListRecentSaidas(ctx, LimiteMovimentacoes)
	if err != nil {
		return nil, err
	}
	return &dto.MovimentacoesDTO{
		Entradas: toMovimentoDTOs(entradas),
		Saidas:   toMovimentoDTOs(saidas),
	}, nil
}

func toMovimentoDTOs(movs []*entity.Movimento) []dto.MovimentoDTO {
	out := make([]dto.MovimentoDTO, 0, len(movs))
	for _, m := range movs {
		out = append(out, dto.MovimentoDTO{
			ID:         m.ID,
			Cod:        m.Cod,
			Descricao:  m.Descricao,
			Unid:       m.Unid,
			Quantidade: m.Quantidade,
			Data:       m.Data.Format(FormatoData),
		})
	}
	return out
}
