package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/seu-usuario/estoque-api/internal/application/dto"
	"github.com/seu-usuario/estoque-api/pkg/jwt"
)

// Locals keys para a identidade do chamador no Fiber.
const (
	LocalUserID   = "user_id"
	LocalUsername = "username"
	LocalIsAdmin  = "is_admin"
)

// AuthMiddleware valida o Bearer Token JWT e carrega o AuthContext
// (user id, username, flag de admin) em c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vazio"})
		}
		userID, username, isAdmin, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido ou expirado"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalUsername, username)
		c.Locals(LocalIsAdmin, isAdmin)
		return c.Next()
	}
}

// RequireAdmin bloqueia chamadores sem a flag de admin. Usar depois do
// AuthMiddleware.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !IsAdmin(c) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "Acesso negado"})
		}
		return c.Next()
	}
}

// GetUserID devolve o id do usuário do contexto (depois do middleware de auth).
func GetUserID(c *fiber.Ctx) int64 {
	v := c.Locals(LocalUserID)
	if v == nil {
		return 0
	}
	id, _ := v.(int64)
	return id
}

// GetUsername devolve o username do contexto.
func GetUsername(c *fiber.Ctx) string {
	v := c.Locals(LocalUsername)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// IsAdmin devolve a flag de admin do contexto.
func IsAdmin(c *fiber.Ctx) bool {
	v := c.Locals(LocalIsAdmin)
	if v == nil {
		return false
	}
	b, _ := v.(bool)
	return b
}
