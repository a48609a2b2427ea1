package usecase

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-cli/internal/application/dto"
)

// ReportGenerator renderiza un InventoryReport (PDF, hoja de cálculo...).
type ReportGenerator interface {
	Generate(ctx context.Context, report dto.InventoryReport) ([]byte, error)
}

// BuildReport arma el reporte del catálogo en el orden del almacén.
func (uc *ProductUseCase) BuildReport(ctx context.Context, title string) (dto.InventoryReport, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		uc.log.Error().Err(err).Msg("error de base de datos al consultar el inventario")
		return dto.InventoryReport{}, err
	}

	report := dto.InventoryReport{
		Title:       title,
		GeneratedAt: time.Now(),
		Products:    make([]dto.ReportLine, 0, len(list)),
		TotalValue:  decimal.Zero,
	}
	for _, p := range list {
		value := p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
		report.Products = append(report.Products, dto.ReportLine{
			ProductResponse: dto.ToProductResponse(p),
			Value:           value,
		})
		report.Units += p.Quantity
		report.TotalValue = report.TotalValue.Add(value)
	}
	return report, nil
}

// Report genera el reporte con gen y lo escribe en path (crea o trunca).
func (uc *ProductUseCase) Report(ctx context.Context, path, title string, gen ReportGenerator) error {
	report, err := uc.BuildReport(ctx, title)
	if err != nil {
		return err
	}

	data, err := gen.Generate(ctx, report)
	if err != nil {
		uc.log.Error().Err(err).Msg("error al generar el reporte")
		return fmt.Errorf("generar reporte: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		uc.log.Error().Err(err).Msgf("error al escribir el reporte: %s", path)
		return fmt.Errorf("escribir reporte: %w", err)
	}

	uc.log.Info().
		Int("productos", len(report.Products)).
		Str("valor_total", report.TotalValue.StringFixed(2)).
		Msgf("reporte generado: %s", path)
	return nil
}
