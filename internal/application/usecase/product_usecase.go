package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jhoicas/inventario-cli/internal/application/dto"
	"github.com/jhoicas/inventario-cli/internal/domain"
	"github.com/jhoicas/inventario-cli/internal/domain/entity"
	"github.com/jhoicas/inventario-cli/internal/domain/repository"
	"github.com/jhoicas/inventario-cli/pkg/logger"
)

// priceDecimals escala de la columna price; los precios se redondean a ella antes de validar.
const priceDecimals = 2

// ImportOptions ajusta Import. Los valores cero reproducen el comportamiento histórico:
// un número inválido aborta el resto del archivo y no se buscan duplicados.
type ImportOptions struct {
	ContinueOnBadNumber bool
	CheckDuplicates     bool
}

// EditFunc recibe una copia del producto actual y devuelve los cambios a aplicar.
// Si devuelve error la actualización se cancela completa.
type EditFunc func(current dto.ProductResponse) (dto.UpdateProductRequest, error)

// ProductUseCase casos de uso del catálogo: alta, baja, edición, listado, exportación e importación.
// Cada operación registra su resultado en el logger y además devuelve el error al llamador.
type ProductUseCase struct {
	repo repository.ProductRepository
	log  *logger.Logger
	opts ImportOptions
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, log *logger.Logger, opts ImportOptions) *ProductUseCase {
	return &ProductUseCase{repo: repo, log: log, opts: opts}
}

// Add crea un producto nuevo. Valida sin tocar el almacén y luego comprueba duplicados por nombre.
// El precio se redondea a dos decimales: 0.001 es inválido y 9.999 se guarda como 10.00.
func (uc *ProductUseCase) Add(ctx context.Context, in dto.CreateProductRequest) error {
	in.Price = in.Price.Round(priceDecimals)
	if err := dto.Validate(in); err != nil {
		uc.log.Error().Msgf("intento de agregar producto inválido: %s", reason(err))
		return err
	}

	existing, err := uc.repo.GetByName(ctx, in.Name)
	if err != nil {
		uc.log.Error().Err(err).Msg("error de base de datos al verificar producto duplicado")
		return err
	}
	if existing != nil {
		uc.log.Error().Msgf("el producto ya existe: %s", in.Name)
		return fmt.Errorf("%w: %s", domain.ErrDuplicate, in.Name)
	}

	product := &entity.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Quantity:    in.Quantity,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		uc.log.Error().Err(err).Msg("error de base de datos al agregar producto")
		return err
	}
	uc.log.Info().Msgf("producto agregado: %s", in.Name)
	return nil
}

// Remove elimina el producto por nombre. El booleano es true solo si se borró al menos una fila;
// el error distingue ErrNotFound de un fallo del almacén.
func (uc *ProductUseCase) Remove(ctx context.Context, name string) (bool, error) {
	if name == "" {
		uc.log.Error().Msg("el nombre del producto no puede estar vacío")
		return false, fmt.Errorf("%w: nombre vacío", domain.ErrInvalidInput)
	}

	n, err := uc.repo.DeleteByName(ctx, name)
	if err != nil {
		uc.log.Error().Err(err).Msg("error de base de datos al eliminar producto")
		return false, err
	}
	if n == 0 {
		uc.log.Error().Msgf("producto no encontrado: %s", name)
		return false, fmt.Errorf("%w: %s", domain.ErrNotFound, name)
	}
	uc.log.Info().Msgf("producto eliminado: %s", name)
	return true, nil
}

// Update lee el producto currentName, aplica los cambios que devuelve edit sobre una copia y
// escribe el registro completo usando currentName como clave. Un renombrado hacia un nombre
// existente no se comprueba aquí: decide el almacén.
func (uc *ProductUseCase) Update(ctx context.Context, currentName string, edit EditFunc) error {
	if currentName == "" {
		uc.log.Error().Msg("el nombre del producto a actualizar no puede estar vacío")
		return fmt.Errorf("%w: nombre vacío", domain.ErrInvalidInput)
	}

	found, err := uc.repo.GetByName(ctx, currentName)
	if err != nil {
		uc.log.Error().Err(err).Msg("error de base de datos al obtener producto")
		return err
	}
	if found == nil {
		uc.log.Error().Msgf("producto no encontrado: %s", currentName)
		return fmt.Errorf("%w: %s", domain.ErrNotFound, currentName)
	}

	changes, err := edit(dto.ToProductResponse(found))
	if err != nil {
		if !errors.Is(err, io.EOF) {
			uc.log.Error().Msgf("actualización cancelada: %s", reason(err))
		}
		return err
	}

	product := found.Clone()
	if changes.Name != nil {
		product.Name = *changes.Name
	}
	if changes.Description != nil {
		product.Description = *changes.Description
	}
	if changes.Price != nil {
		product.Price = changes.Price.Round(priceDecimals)
	}
	if changes.Quantity != nil {
		product.Quantity = *changes.Quantity
	}

	if err := dto.Validate(dto.NewCreateProductRequest(product)); err != nil {
		uc.log.Error().Msgf("actualización rechazada: %s", reason(err))
		return err
	}

	if err := uc.repo.Update(ctx, currentName, product); err != nil {
		uc.log.Error().Err(err).Msg("error de base de datos al actualizar producto")
		return err
	}
	uc.log.Info().Msgf("producto actualizado: %s", product.Name)
	return nil
}

// List escribe el inventario en w como tabla de ancho fijo. Con el catálogo vacío solo registra un aviso.
func (uc *ProductUseCase) List(ctx context.Context, w io.Writer) error {
	list, err := uc.repo.List(ctx)
	if err != nil {
		uc.log.Error().Err(err).Msg("error de base de datos al consultar el inventario")
		return err
	}
	if len(list) == 0 {
		uc.log.Info().Msg("el inventario está vacío")
		return nil
	}

	if _, err := fmt.Fprintf(w, "%-20s %-30s %-10s %-10s\n", "Producto", "Descripción", "Precio", "Cantidad"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("-", 69)); err != nil {
		return err
	}
	for _, p := range list {
		if _, err := fmt.Fprintf(w, "%-20s %-30s $%-9s %-10d\n",
			p.Name, p.Description, p.Price.StringFixed(2), p.Quantity); err != nil {
			return err
		}
	}
	return nil
}

// reason devuelve el detalle de un error de validación sin el prefijo del sentinel.
func reason(err error) string {
	msg := err.Error()
	if errors.Is(err, domain.ErrInvalidInput) {
		msg = strings.TrimPrefix(msg, domain.ErrInvalidInput.Error()+": ")
	}
	return msg
}
