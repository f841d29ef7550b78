package estoque

import (
	"context"

	"github.com/seu-usuario/estoque-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados a essa tx. Garante atomicidade entre o insert do
// movimento e o incremento do contador no razão.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		estoqueRepo repository.EstoqueRepository,
		movRepo repository.MovimentoRepository,
	) error) error
}

// EventPublisher é o canal de eventos de saída. Invocado somente após o
// commit de uma mutação; entrega melhor-esforço, sem ack nem ordenação.
type EventPublisher interface {
	Publish(topic string, payload any)
}
