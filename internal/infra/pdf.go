package infra

// pdf.go: quote (orçamento) rendering with go-pdf/fpdf.
// Produces an A4 quote sheet: company header, client block, item table
// (material, dimensions, quantity, frozen unit price, subtotal) and the
// order total. Rendered into memory so the handler can stream it.

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/nunes1886/prisma/internal/model"
)

// GenerateOrcamentoPDF renders the quote for a pedido. The pedido must be
// loaded with Cliente, Items and Items.Material.
func GenerateOrcamentoPDF(pedido *model.Pedido, nomeEmpresa string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, nomeEmpresa, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, fmt.Sprintf("Orçamento - Pedido Nº %d", pedido.Numero), "", 1, "C", false, 0, "")
	pdf.CellFormat(contentW, 5, pedido.CreatedAt.Format("02/01/2006"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Client block ─────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 6, "Cliente", "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	if pedido.Cliente != nil {
		pdf.CellFormat(contentW, 6, pedido.Cliente.Nome, "", 1, "L", false, 0, "")
		if pedido.Cliente.Documento != nil {
			pdf.CellFormat(contentW, 5, "Documento: "+*pedido.Cliente.Documento, "", 1, "L", false, 0, "")
		}
	}
	if pedido.Prazo != nil {
		pdf.CellFormat(contentW, 5, "Prazo de entrega: "+pedido.Prazo.Format("02/01/2006"), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// ── Item table ───────────────────────────────────────────────────────────
	col1 := contentW * 0.38 // material
	col2 := contentW * 0.18 // dimensions
	col3 := contentW * 0.10 // qty
	col4 := contentW * 0.16 // unit price
	col5 := contentW * 0.18 // subtotal

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1, 6, "Material", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, "Medidas", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 6, "Qtd", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col4, 6, "Preço Unit.", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col5, 6, "Subtotal", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, item := range pedido.Items {
		nome := ""
		unidade := ""
		if item.Material != nil {
			nome = item.Material.Nome
			unidade = item.Material.Unidade
		}
		if len(nome) > 34 {
			nome = nome[:33] + "…"
		}
		medidas := "—"
		if unidade == model.UnidadeM2 {
			medidas = fmt.Sprintf("%s × %s m", item.Largura.String(), item.Altura.String())
		}
		pdf.CellFormat(col1, 6, nome, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, medidas, "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 6, fmt.Sprintf("x%d", item.Quantidade), "", 0, "C", false, 0, "")
		pdf.CellFormat(col4, 6, "R$ "+item.PrecoUnitario.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(col5, 6, "R$ "+item.Subtotal.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(2)

	// ── Total ────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(col1+col2+col3+col4, 8, "TOTAL:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col5, 8, "R$ "+pedido.ValorTotal.StringFixed(2), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render orçamento: %w", err)
	}
	return buf.Bytes(), nil
}
