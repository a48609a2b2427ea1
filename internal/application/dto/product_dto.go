package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-cli/internal/domain/entity"
)

// CreateProductRequest entrada para crear un producto. También valida el resultado de una edición o importación.
type CreateProductRequest struct {
	Name        string          `validate:"required"`
	Description string          `validate:"-"`
	Price       decimal.Decimal `validate:"gt=0"`
	Quantity    int             `validate:"gte=0"`
}

// UpdateProductRequest cambios de una edición; nil = sin cambio.
type UpdateProductRequest struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Quantity    *int
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Quantity    int
}

// NewCreateProductRequest arma la petición de validación a partir de una entidad.
func NewCreateProductRequest(p *entity.Product) CreateProductRequest {
	return CreateProductRequest{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    p.Quantity,
	}
}

// ToProductResponse convierte la entidad en DTO de salida.
func ToProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    p.Quantity,
	}
}
