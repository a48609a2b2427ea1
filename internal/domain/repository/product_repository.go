package repository

import (
	"context"

	"github.com/jhoicas/inventario-cli/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Cada método ejecuta una única sentencia; no hay transacciones entre llamadas.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	// GetByName devuelve (nil, nil) si no existe.
	GetByName(ctx context.Context, name string) (*entity.Product, error)
	// Update escribe product usando currentName como clave (permite renombrar).
	Update(ctx context.Context, currentName string, product *entity.Product) error
	// DeleteByName devuelve el número de filas eliminadas.
	DeleteByName(ctx context.Context, name string) (int64, error)
	// List devuelve todas las filas en el orden del almacén.
	List(ctx context.Context) ([]*entity.Product, error)
}
