// Package ws implementa o fan-out de notificações em tempo real.
//
// Entrega é melhor-esforço: sem ack, sem retry, sem garantia de ordem. O
// payload é só um aviso de invalidação; o cliente deve reler o estado via API.
package ws

import (
	"encoding/json"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/rs/zerolog/log"
)

// TopicoEstoque é o tópico publicado após cada mutação do razão de estoque.
const TopicoEstoque = "estoque"

// Hub mantém o conjunto de clientes conectados e distribui broadcasts.
type Hub struct {
	clients    map[*websocket.Conn]bool
	Register   chan *websocket.Conn
	Unregister chan *websocket.Conn
	Broadcast  chan []byte
	mutex      sync.Mutex
}

// NewHub cria o hub. Chamar Run em uma goroutine antes de publicar.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*websocket.Conn]bool),
		Register:   make(chan *websocket.Conn),
		Unregister: make(chan *websocket.Conn),
		// Buffer para que Publish nunca bloqueie um request; eventos em
		// excesso são descartados (melhor-esforço).
		Broadcast: make(chan []byte, 64),
	}
}

// Run processa registros, desregistros e broadcasts até o processo encerrar.
func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.Register:
			h.mutex.Lock()
			h.clients[conn] = true
			h.mutex.Unlock()
			log.Debug().Int("clientes", h.Len()).Msg("cliente ws conectado")

		case conn := <-h.Unregister:
			h.mutex.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mutex.Unlock()

		case message := <-h.Broadcast:
			h.mutex.Lock()
			for conn := range h.clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mutex.Unlock()
		}
	}
}

// Len devolve o número de clientes conectados.
func (h *Hub) Len() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.clients)
}

// Publish serializa o payload e o enfileira para broadcast. O tópico hoje é
// informativo (há um único stream ws); fica na assinatura porque é o contrato
// do porto EventPublisher. Canal cheio descarta o evento em vez de bloquear.
func (h *Hub) Publish(topic string, payload any) {
	raw, err := json.Marshal(payload)
	if err != nil {
		log.Warn().Err(err).Str("topico", topic).Msg("payload de notificação inválido")
		return
	}
	select {
	case h.Broadcast <- raw:
	default:
		log.Warn().Str("topico", topic).Msg("broadcast cheio, notificação descartada")
	}
}
