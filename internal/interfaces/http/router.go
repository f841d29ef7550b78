package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seu-usuario/estoque-api/internal/application/admin"
	"github.com/seu-usuario/estoque-api/internal/application/analytics"
	"github.com/seu-usuario/estoque-api/internal/application/auth"
	"github.com/seu-usuario/estoque-api/internal/application/catalog"
	"github.com/seu-usuario/estoque-api/internal/application/estoque"
	"github.com/seu-usuario/estoque-api/internal/application/report"
	"github.com/seu-usuario/estoque-api/internal/ws"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CatalogUC   *catalog.UseCase
	EstoqueUC   *estoque.UseCase
	UserUC      *admin.UserUseCase
	DashboardUC *analytics.DashboardUseCase
	ExportUC    *report.ExportUseCase
	Hub         *ws.Hub
	JWTSecret   string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)

	// Catálogo de itens (protegido)
	itemHandler := NewItemHandler(deps.CatalogUC)
	protected.Get("/itens", itemHandler.List)
	protected.Post("/itens", itemHandler.Create)

	// Razão de estoque e movimentações (protegido)
	estoqueHandler := NewEstoqueHandler(deps.EstoqueUC)
	protected.Get("/estoque", estoqueHandler.List)
	protected.Post("/entrada", estoqueHandler.Entrada)
	protected.Post("/saida", estoqueHandler.Saida)
	protected.Get("/movimentacoes", estoqueHandler.Movimentacoes)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Stats)

	// Exportação xlsx (protegido)
	exportHandler := NewExportHandler(deps.ExportUC)
	protected.Get("/exportar", exportHandler.Export)

	// Usuários (protegido + admin)
	usuarios := protected.Group("/usuarios", RequireAdmin())
	userHandler := NewUserHandler(deps.UserUC)
	usuarios.Get("/", userHandler.List)
	usuarios.Post("/", userHandler.Create)
	usuarios.Delete("/:id", userHandler.Delete)

	// Notificações em tempo real. O token vai na query (?token=) porque
	// browsers não enviam header Authorization no handshake de websocket.
	app.Use("/ws", WSUpgrade)
	app.Get("/ws", WSAuth(deps.JWTSecret), WSHandler(deps.Hub))
}
