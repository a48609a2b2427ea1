package report_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/inventario-cli/internal/application/dto"
	"github.com/jhoicas/inventario-cli/internal/infrastructure/report"
)

func sampleReport() dto.InventoryReport {
	d := decimal.RequireFromString
	return dto.InventoryReport{
		Title:       "Inventario",
		GeneratedAt: time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC),
		Products: []dto.ReportLine{
			{ProductResponse: dto.ProductResponse{Name: "Widget", Description: "A widget", Price: d("9.99"), Quantity: 10}, Value: d("99.90")},
			{ProductResponse: dto.ProductResponse{Name: "Tornillo", Price: d("0.25"), Quantity: 4}, Value: d("1.00")},
		},
		Units:      14,
		TotalValue: d("100.90"),
	}
}

func TestPDFGenerator_GeneraDocumento(t *testing.T) {
	out, err := report.NewPDFGenerator().Generate(context.Background(), sampleReport())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestPDFGenerator_CatalogoVacio(t *testing.T) {
	out, err := report.NewPDFGenerator().Generate(context.Background(), dto.InventoryReport{Title: "Vacío"})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestXLSXGenerator_FilasYTotales(t *testing.T) {
	out, err := report.NewXLSXGenerator().Generate(context.Background(), sampleReport())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(report.SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Producto", "Descripción", "Precio", "Cantidad", "Valor"}, rows[0])
	assert.Equal(t, "Widget", rows[1][0])
	assert.Equal(t, "A widget", rows[1][1])
	assert.Equal(t, "10", rows[1][3])
	assert.Equal(t, "Tornillo", rows[2][0])
	assert.Equal(t, "Total", rows[3][0])
	assert.Equal(t, "14", rows[3][3])
}
