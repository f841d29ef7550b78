package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/seu-usuario/estoque-api/internal/application/report"
)

// ExportHandler gera o relatório xlsx para download (protegido).
type ExportHandler struct {
	uc *report.ExportUseCase
}

// NewExportHandler constrói o handler de exportação.
func NewExportHandler(uc *report.ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// Export godoc
// @Summary      Exportar snapshot do estoque em xlsx (4 abas)
// @Tags         relatorio
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/exportar [get]
func (h *ExportHandler) Export(c *fiber.Ctx) error {
	raw, err := h.uc.GerarPlanilha(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	c.Set(fiber.HeaderContentType, report.MIMEXLSX)
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s"`, report.NomeArquivo(time.Now())))
	return c.Send(raw)
}
