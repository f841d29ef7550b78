package http

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/seu-usuario/estoque-api/internal/application/dto"
	"github.com/seu-usuario/estoque-api/internal/ws"
	"github.com/seu-usuario/estoque-api/pkg/jwt"
)

// WSUpgrade recusa com 426 requisições que não pedem upgrade para websocket.
func WSUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// WSAuth valida o JWT passado em ?token= antes do upgrade. O token vem na
// query porque browsers não enviam header Authorization no handshake.
func WSAuth(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Query("token")
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token ausente"})
		}
		userID, username, isAdmin, err := jwt.Parse(jwtSecret, token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido ou expirado"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalUsername, username)
		c.Locals(LocalIsAdmin, isAdmin)
		return c.Next()
	}
}

// WSHandler registra a conexão no hub e mantém um loop de leitura só para
// detectar o fechamento; o servidor nunca consome mensagens do cliente.
func WSHandler(hub *ws.Hub) fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		hub.Register <- conn
		defer func() {
			hub.Unregister <- conn
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})
}
