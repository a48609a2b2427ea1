package report

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/inventario-cli/internal/application/dto"
	"github.com/jhoicas/inventario-cli/internal/application/usecase"
)

// SheetName hoja donde se escribe el inventario.
const SheetName = "Inventario"

var _ usecase.ReportGenerator = (*XLSXGenerator)(nil)

// XLSXGenerator libro con encabezado, una fila por producto y una fila de totales.
type XLSXGenerator struct{}

// NewXLSXGenerator construye el generador.
func NewXLSXGenerator() *XLSXGenerator { return &XLSXGenerator{} }

// Generate devuelve los bytes del .xlsx.
func (g *XLSXGenerator) Generate(_ context.Context, r dto.InventoryReport) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}

	rows := make([][]any, 0, len(r.Products)+2)
	rows = append(rows, []any{"Producto", "Descripción", "Precio", "Cantidad", "Valor"})
	for _, p := range r.Products {
		rows = append(rows, []any{p.Name, p.Description, p.Price.InexactFloat64(), p.Quantity, p.Value.InexactFloat64()})
	}
	rows = append(rows, []any{"Total", "", "", r.Units, r.TotalValue.InexactFloat64()})

	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, fmt.Errorf("xlsx: celda: %w", err)
		}
		if err := f.SetSheetRow(SheetName, cell, &rows[i]); err != nil {
			return nil, fmt.Errorf("xlsx: escribir fila %d: %w", i+1, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}
	if err := f.SetRowStyle(SheetName, 1, 1, bold); err != nil {
		return nil, fmt.Errorf("xlsx: estilo encabezado: %w", err)
	}
	if err := f.SetRowStyle(SheetName, len(rows), len(rows), bold); err != nil {
		return nil, fmt.Errorf("xlsx: estilo totales: %w", err)
	}
	if err := f.SetColWidth(SheetName, "A", "B", 30); err != nil {
		return nil, fmt.Errorf("xlsx: ancho de columnas: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: serializar: %w", err)
	}
	return buf.Bytes(), nil
}
