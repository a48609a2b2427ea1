package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. Name es la única clave de identificación.
// Una instancia en memoria es una copia de la fila; vale hasta la siguiente mutación del almacén.
type Product struct {
	Name        string
	Description string
	Price       decimal.Decimal // > 0, validado al escribir
	Quantity    int             // >= 0, validado al escribir
}

// Clone devuelve una copia independiente.
func (p *Product) Clone() *Product {
	c := *p
	return &c
}

// Line serializa el producto en el formato de exportación: name,description,price,quantity.
func (p *Product) Line() string {
	return fmt.Sprintf("%s,%s,%s,%d", p.Name, p.Description, p.Price.StringFixed(2), p.Quantity)
}
