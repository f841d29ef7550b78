package ws

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seu-usuario/estoque-api/internal/application/dto"
)

func TestPublish_SerializaParaBroadcast(t *testing.T) {
	h := NewHub()

	h.Publish(TopicoEstoque, dto.EstoqueEvent{Message: "entrada_registrada"})

	select {
	case raw := <-h.Broadcast:
		var ev dto.EstoqueEvent
		require.NoError(t, json.Unmarshal(raw, &ev))
		assert.Equal(t, "entrada_registrada", ev.Message)
	default:
		t.Fatal("Publish deve enfileirar o evento no canal de broadcast")
	}
}

// Publish nunca bloqueia o request que registrou a mutação: com o canal
// cheio, o evento é descartado.
func TestPublish_DescartaComCanalCheio(t *testing.T) {
	h := NewHub()

	for i := 0; i < cap(h.Broadcast)+10; i++ {
		h.Publish(TopicoEstoque, dto.EstoqueEvent{Message: "saida_registrada"})
	}

	assert.Len(t, h.Broadcast, cap(h.Broadcast), "excedente deve ser descartado")
}

func TestPublish_PayloadInvalido(t *testing.T) {
	h := NewHub()

	// Canais não são serializáveis em JSON; nada deve ser enfileirado.
	h.Publish(TopicoEstoque, make(chan int))

	assert.Empty(t, h.Broadcast)
}

func TestLen_SemClientes(t *testing.T) {
	assert.Equal(t, 0, NewHub().Len())
}
