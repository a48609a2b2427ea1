package usecase

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-cli/internal/application/dto"
	"github.com/jhoicas/inventario-cli/internal/domain"
	"github.com/jhoicas/inventario-cli/internal/domain/entity"
)

const transferFields = 4

// ImportResult conteo de líneas procesadas por Import.
type ImportResult struct {
	Inserted int // filas insertadas
	Skipped  int // líneas descartadas (campos, validación, duplicado)
	Failed   int // inserciones rechazadas por el almacén
}

// Export escribe todo el catálogo en path (crea o trunca), una línea name,description,price,quantity
// por producto. Ante un error el archivo puede quedar incompleto.
func (uc *ProductUseCase) Export(ctx context.Context, path string) error {
	list, err := uc.repo.List(ctx)
	if err != nil {
		uc.log.Error().Err(err).Msg("error al guardar el inventario en archivo")
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		uc.log.Error().Err(err).Msg("error al guardar el inventario en archivo")
		return fmt.Errorf("crear archivo: %w", err)
	}

	w := bufio.NewWriter(f)
	for _, p := range list {
		if _, err := w.WriteString(p.Line() + "\n"); err != nil {
			_ = f.Close()
			uc.log.Error().Err(err).Msg("error al guardar el inventario en archivo")
			return fmt.Errorf("escribir archivo: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		uc.log.Error().Err(err).Msg("error al guardar el inventario en archivo")
		return fmt.Errorf("escribir archivo: %w", err)
	}
	if err := f.Close(); err != nil {
		uc.log.Error().Err(err).Msg("error al guardar el inventario en archivo")
		return fmt.Errorf("cerrar archivo: %w", err)
	}

	uc.log.Info().Int("productos", len(list)).Msgf("inventario guardado en archivo: %s", path)
	return nil
}

// Import inserta cada línea de path como un producto nuevo, una sentencia por línea y sin transacción.
// Las líneas no tienen límite de longitud; las que no tienen exactamente 4 campos se ignoran.
// Un número inválido detiene la carga (salvo ContinueOnBadNumber); las líneas anteriores quedan insertadas.
func (uc *ProductUseCase) Import(ctx context.Context, path string) (ImportResult, error) {
	var res ImportResult

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			uc.log.Error().Msgf("archivo no encontrado: %s", path)
		} else {
			uc.log.Error().Err(err).Msgf("no se pudo abrir el archivo: %s", path)
		}
		return res, fmt.Errorf("abrir archivo: %w", err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	for lineNo := 1; ; lineNo++ {
		line, readErr := r.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			uc.log.Error().Err(readErr).Msgf("error leyendo el archivo: %s", path)
			return res, fmt.Errorf("leer archivo: %w", readErr)
		}
		if line != "" {
			if err := uc.importLine(ctx, lineNo, strings.TrimSuffix(line, "\n"), &res); err != nil {
				return res, err
			}
		}
		if readErr != nil {
			break
		}
	}

	uc.log.Info().
		Int("insertados", res.Inserted).
		Int("omitidos", res.Skipped).
		Int("fallidos", res.Failed).
		Msgf("inventario cargado desde archivo: %s", path)
	return res, nil
}

// importLine procesa una línea. Solo devuelve error cuando la carga debe detenerse.
func (uc *ProductUseCase) importLine(ctx context.Context, lineNo int, line string, res *ImportResult) error {
	fields := splitLine(line)
	if len(fields) != transferFields {
		res.Skipped++
		return nil
	}

	product, err := parseFields(fields)
	if err != nil {
		uc.log.Error().Int("linea", lineNo).Msgf("error de formato numérico en el archivo: %s", reason(err))
		if !uc.opts.ContinueOnBadNumber {
			return fmt.Errorf("línea %d: %w", lineNo, err)
		}
		res.Skipped++
		return nil
	}

	if err := dto.Validate(dto.NewCreateProductRequest(product)); err != nil {
		uc.log.Error().Int("linea", lineNo).Msgf("producto inválido en el archivo: %s", reason(err))
		res.Skipped++
		return nil
	}

	if uc.opts.CheckDuplicates {
		existing, err := uc.repo.GetByName(ctx, product.Name)
		if err != nil {
			uc.log.Error().Int("linea", lineNo).Err(err).Msg("error de base de datos al verificar producto duplicado")
			res.Failed++
			return nil
		}
		if existing != nil {
			uc.log.Error().Int("linea", lineNo).Msgf("el producto ya existe: %s", product.Name)
			res.Skipped++
			return nil
		}
	}

	if err := uc.repo.Create(ctx, product); err != nil {
		uc.log.Error().Int("linea", lineNo).Err(err).Msg("error al cargar producto desde archivo")
		res.Failed++
		return nil
	}
	res.Inserted++
	return nil
}

// splitLine separa por comas; los campos vacíos al final no cuentan ("a,b,1,," tiene 3 campos).
func splitLine(line string) []string {
	fields := strings.Split(strings.TrimSuffix(line, "\r"), ",")
	for len(fields) > 0 && fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}
	return fields
}

func parseFields(fields []string) (*entity.Product, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(fields[2]))
	if err != nil {
		return nil, fmt.Errorf("%w: precio %q", domain.ErrInvalidInput, fields[2])
	}
	price = price.Round(priceDecimals)
	qty, err := strconv.Atoi(strings.TrimSpace(fields[3]))
	if err != nil {
		return nil, fmt.Errorf("%w: cantidad %q", domain.ErrInvalidInput, fields[3])
	}
	return &entity.Product{
		Name:        fields[0],
		Description: fields[1],
		Price:       price,
		Quantity:    qty,
	}, nil
}
