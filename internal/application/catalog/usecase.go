// Package catalog contém o caso de uso de cadastro e listagem de itens.
package catalog

import (
	"context"
	"strings"

	"github.com/seu-usuario/estoque-api/internal/application/dto"
	"github.com/seu-usuario/estoque-api/internal/domain"
	"github.com/seu-usuario/estoque-api/internal/domain/entity"
	"github.com/seu-usuario/estoque-api/internal/domain/repository"
)

// EstoqueMinimoPadrao usado quando o request não informa o mínimo.
const EstoqueMinimoPadrao = 10

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados a essa tx. Item e linha do razão nascem juntos: ou as
// duas escritas entram, ou nenhuma.
type TxRunner interface {
	RunCatalog(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		estoqueRepo repository.EstoqueRepository,
	) error) error
}

// UseCase casos de uso do catálogo de itens.
type UseCase struct {
	txRunner TxRunner
	itemRepo repository.ItemRepository
}

// NewUseCase constrói o caso de uso do catálogo.
func NewUseCase(txRunner TxRunner, itemRepo repository.ItemRepository) *UseCase {
	return &UseCase{txRunner: txRunner, itemRepo: itemRepo}
}

// RegistrarItem cria o Item e a linha do razão (entradas=0, saidas=0) em uma
// única transação. O cod é normalizado (trim + maiúsculas). Duplicidade é
// detectada pela violação da constraint de unicidade, não por pré-consulta:
// a constraint é o sinal autoritativo de ErrCodigoDuplicado.
func (uc *UseCase) RegistrarItem(ctx context.Context, in dto.ItemCreateRequest) error {
	cod := strings.ToUpper(strings.TrimSpace(in.Cod))
	if cod == "" {
		return domain.ErrDadosInvalidos
	}
	minimo := int64(EstoqueMinimoPadrao)
	if in.EstoqueMinimo != nil {
		minimo = *in.EstoqueMinimo
	}

	return uc.txRunner.RunCatalog(ctx, func(
		itemRepo repository.ItemRepository,
		estoqueRepo repository.EstoqueRepository,
	) error {
		item := &entity.Item{
			Cod:           cod,
			Descricao:     in.Descricao,
			Unid:          in.Unid,
			EstoqueMinimo: minimo,
		}
		if err := itemRepo.Create(ctx, item); err != nil {
			return err
		}
		return estoqueRepo.Create(ctx, &entity.Estoque{
			Cod:           cod,
			Descricao:     in.Descricao,
			Unid:          in.Unid,
			EstoqueMinimo: minimo,
		})
	})
}

// ListarItens devolve o catálogo completo ordenado por cod.
func (uc *UseCase) ListarItens(ctx context.Context) ([]dto.ItemDTO, error) {
	itens, err := uc.itemRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemDTO, 0, len(itens))
	for _, it := range itens {
		out = append(out, dto.ItemDTO{
			Cod:           it.Cod,
			Descricao:     it.Descricao,
			Unid:          it.Unid,
			EstoqueMinimo: it.EstoqueMinimo,
		})
	}
	return out, nil
}
