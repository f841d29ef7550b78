// Package report monta o relatório de estoque em planilha (xlsx).
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/seu-usuario/estoque-api/internal/domain/entity"
	"github.com/seu-usuario/estoque-api/internal/domain/repository"
)

// Nomes das quatro abas do relatório.
const (
	AbaVisaoGeral = "Visão Geral"
	AbaEntradas   = "Entradas"
	AbaSaidas     = "Saídas"
	AbaCadastros  = "Cadastros"
)

// Classificação da coluna Status: LOW quando saldo <= mínimo, OK caso contrário.
const (
	StatusLow = "LOW"
	StatusOK  = "OK"
)

// MIMEXLSX content type do documento gerado.
const MIMEXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// formatoData layout das células de data nas abas de histórico.
const formatoData = "2006-01-02"

// ExportUseCase agrega as quatro tabelas em um snapshot xlsx. Somente
// leitura; não passa pelo notificador.
type ExportUseCase struct {
	estoqueRepo repository.EstoqueRepository
	movRepo     repository.MovimentoRepository
	itemRepo    repository.ItemRepository
}

// NewExportUseCase constrói o caso de uso de exportação.
func NewExportUseCase(
	estoqueRepo repository.EstoqueRepository,
	movRepo repository.MovimentoRepository,
	itemRepo repository.ItemRepository,
) *ExportUseCase {
	return &ExportUseCase{estoqueRepo: estoqueRepo, movRepo: movRepo, itemRepo: itemRepo}
}

// NomeArquivo devolve o nome de download do relatório para a data dada.
func NomeArquivo(t time.Time) string {
	return fmt.Sprintf("Relatorio_Estoque_%s.xlsx", t.Format("02-01-2006"))
}

// GerarPlanilha lê as quatro tabelas e devolve o documento xlsx serializado.
func (uc *ExportUseCase) GerarPlanilha(ctx context.Context) ([]byte, error) {
	estoque, err := uc.estoqueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("export: razão: %w", err)
	}
	entradas, err := uc.movRepo.ListAllEntradas(ctx)
	if err != nil {
		return nil, fmt.Errorf("export: entradas: %w", err)
	}
	saidas, err := uc.movRepo.ListAllSaidas(ctx)
	if err != nil {
		return nil, fmt.Errorf("export: saídas: %w", err)
	}
	itens, err := uc.itemRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("export: catálogo: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"192A56"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("export: estilo de cabeçalho: %w", err)
	}
	lowStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Color: "FF0000"}})
	if err != nil {
		return nil, fmt.Errorf("export: estilo LOW: %w", err)
	}
	okStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Color: "008000"}})
	if err != nil {
		return nil, fmt.Errorf("export: estilo OK: %w", err)
	}

	if err := uc.abaVisaoGeral(f, estoque, headerStyle, lowStyle, okStyle); err != nil {
		return nil, err
	}
	if err := abaMovimentos(f, AbaEntradas, entradas, headerStyle); err != nil {
		return nil, err
	}
	if err := abaMovimentos(f, AbaSaidas, saidas, headerStyle); err != nil {
		return nil, err
	}
	if err := uc.abaCadastros(f, itens, headerStyle); err != nil {
		return nil, err
	}

	// Largura fixa: código estreito, descrição larga (igual em todas as abas).
	for _, aba := range []string{AbaVisaoGeral, AbaEntradas, AbaSaidas, AbaCadastros} {
		_ = f.SetColWidth(aba, "A", "A", 15)
		_ = f.SetColWidth(aba, "B", "B", 30)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("export: serializar workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func (uc *ExportUseCase) abaVisaoGeral(f *excelize.File, estoque []*entity.Estoque, headerStyle, lowStyle, okStyle int) error {
	// A primeira aba reaproveita a Sheet1 criada pelo excelize.
	if err := f.SetSheetName("Sheet1", AbaVisaoGeral); err != nil {
		return fmt.Errorf("export: renomear aba: %w", err)
	}
	header := []any{"Código", "Descrição", "Unidade", "Mínimo", "Entradas", "Saídas", "Saldo Atual", "Status"}
	if err := f.SetSheetRow(AbaVisaoGeral, "A1", &header); err != nil {
		return fmt.Errorf("export: cabeçalho visão geral: %w", err)
	}
	_ = f.SetCellStyle(AbaVisaoGeral, "A1", "H1", headerStyle)

	for i, row := range estoque {
		status := StatusOK
		statusStyle := okStyle
		if row.AlertaBaixo() {
			status = StatusLow
			statusStyle = lowStyle
		}
		linha := []any{row.Cod, row.Descricao, row.Unid, row.EstoqueMinimo, row.Entradas, row.Saidas, row.Saldo(), status}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(AbaVisaoGeral, cell, &linha); err != nil {
			return fmt.Errorf("export: linha visão geral: %w", err)
		}
		statusCell := fmt.Sprintf("H%d", i+2)
		_ = f.SetCellStyle(AbaVisaoGeral, statusCell, statusCell, statusStyle)
	}
	return nil
}

func abaMovimentos(f *excelize.File, aba string, movs []*entity.Movimento, headerStyle int) error {
	if _, err := f.NewSheet(aba); err != nil {
		return fmt.Errorf("export: criar aba %s: %w", aba, err)
	}
	header := []any{"Data", "Código", "Descrição", "Unidade", "Quantidade"}
	if err := f.SetSheetRow(aba, "A1", &header); err != nil {
		return fmt.Errorf("export: cabeçalho %s: %w", aba, err)
	}
	_ = f.SetCellStyle(aba, "A1", "E1", headerStyle)

	for i, m := range movs {
		linha := []any{m.Data.Format(formatoData), m.Cod, m.Descricao, m.Unid, m.Quantidade}
		if err := f.SetSheetRow(aba, fmt.Sprintf("A%d", i+2), &linha); err != nil {
			return fmt.Errorf("export: linha %s: %w", aba, err)
		}
	}
	return nil
}

func (uc *ExportUseCase) abaCadastros(f *excelize.File, itens []*entity.Item, headerStyle int) error {
	if _, err := f.NewSheet(AbaCadastros); err != nil {
		return fmt.Errorf("export: criar aba cadastros: %w", err)
	}
	header := []any{"Código", "Descrição", "Unidade", "Estoque Mínimo Padrão"}
	if err := f.SetSheetRow(AbaCadastros, "A1", &header); err != nil {
		return fmt.Errorf("export: cabeçalho cadastros: %w", err)
	}
	_ = f.SetCellStyle(AbaCadastros, "A1", "D1", headerStyle)

	for i, it := range itens {
		linha := []any{it.Cod, it.Descricao, it.Unid, it.EstoqueMinimo}
		if err := f.SetSheetRow(AbaCadastros, fmt.Sprintf("A%d", i+2), &linha); err != nil {
			return fmt.Errorf("export: linha cadastros: %w", err)
		}
	}
	return nil
}
