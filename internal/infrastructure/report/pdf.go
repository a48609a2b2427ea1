// Package report renderiza el reporte de inventario en PDF (Maroto) y en hoja de cálculo (Excelize).
package report

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/inventario-cli/internal/application/dto"
	"github.com/jhoicas/inventario-cli/internal/application/usecase"
)

const dateLayout = "2006-01-02 15:04"

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ usecase.ReportGenerator = (*PDFGenerator)(nil)

// PDFGenerator reporte A4 con una fila por producto y totales al final.
type PDFGenerator struct{}

// NewPDFGenerator construye el generador.
func NewPDFGenerator() *PDFGenerator { return &PDFGenerator{} }

// Generate devuelve los bytes del PDF.
func (g *PDFGenerator) Generate(_ context.Context, r dto.InventoryReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(r.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(pdfHeaderRow())
	for _, p := range r.Products {
		m.AddRows(pdfProductRow(p))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(pdfTotalsRow(r))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func titleRow(r dto.InventoryReport) core.Row {
	return row.New(14).Add(
		col.New(8).Add(text.New(r.Title, props.Text{
			Style: fontstyle.Bold, Size: 14, Color: colorPrimary,
		})),
		col.New(4).Add(text.New("Generado: "+r.GeneratedAt.Format(dateLayout), props.Text{
			Size: 8, Align: align.Right, Top: 2, Color: colorGray,
		})),
	)
}

func pdfHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 3, align.Left),
		h("Descripción", 4, align.Left),
		h("Precio", 2, align.Right),
		h("Cantidad", 1, align.Right),
		h("Valor", 2, align.Right),
	)
}

func pdfProductRow(p dto.ReportLine) core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	return row.New(7).Add(
		cell(p.Name, 3, align.Left),
		cell(p.Description, 4, align.Left),
		cell("$"+p.Price.StringFixed(2), 2, align.Right),
		cell(strconv.Itoa(p.Quantity), 1, align.Right),
		cell("$"+p.Value.StringFixed(2), 2, align.Right),
	)
}

func pdfTotalsRow(r dto.InventoryReport) core.Row {
	bold := props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1, Right: 1}
	return row.New(9).Add(
		col.New(7).Add(text.New(fmt.Sprintf("%d productos", len(r.Products)), props.Text{
			Size: 8, Top: 1, Left: 1, Color: colorGray,
		})),
		col.New(2).Add(text.New("Total", bold)),
		col.New(1).Add(text.New(strconv.Itoa(r.Units), bold)),
		col.New(2).Add(text.New("$"+r.TotalValue.StringFixed(2), bold)),
	)
}
