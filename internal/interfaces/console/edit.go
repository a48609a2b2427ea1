package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-cli/internal/application/dto"
	"github.com/jhoicas/inventario-cli/internal/domain"
)

// editProduct pregunta campo por campo qué cambiar. Un número inválido cancela toda la edición.
func (c *Console) editProduct(current dto.ProductResponse) (dto.UpdateProductRequest, error) {
	var req dto.UpdateProductRequest

	fmt.Fprintf(c.out, "Producto actual: %s | %s | $%s | %d\n",
		current.Name, current.Description, current.Price.StringFixed(2), current.Quantity)

	if ok, err := c.confirm("¿Desea cambiar el nombre del producto? (si/no): "); err != nil {
		return req, err
	} else if ok {
		name, err := c.prompt("Nuevo nombre del producto: ")
		if err != nil {
			return req, err
		}
		req.Name = &name
	}

	if ok, err := c.confirm("¿Desea cambiar la descripción del producto? (si/no): "); err != nil {
		return req, err
	} else if ok {
		description, err := c.prompt("Nueva descripción del producto: ")
		if err != nil {
			return req, err
		}
		req.Description = &description
	}

	if ok, err := c.confirm("¿Desea cambiar el precio del producto? (si/no): "); err != nil {
		return req, err
	} else if ok {
		raw, err := c.prompt("Nuevo precio del producto: ")
		if err != nil {
			return req, err
		}
		price, err := parsePrice(raw)
		if err != nil {
			return req, err
		}
		req.Price = &price
	}

	if ok, err := c.confirm("¿Desea cambiar la cantidad del producto? (si/no): "); err != nil {
		return req, err
	} else if ok {
		raw, err := c.prompt("Nueva cantidad: ")
		if err != nil {
			return req, err
		}
		qty, err := parseQuantity(raw)
		if err != nil {
			return req, err
		}
		req.Quantity = &qty
	}

	return req, nil
}

func (c *Console) confirm(question string) (bool, error) {
	answer, err := c.prompt(question)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "si", "sí", "s", "yes", "y":
		return true, nil
	default:
		return false, nil
	}
}

func parsePrice(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: precio %q", domain.ErrInvalidInput, raw)
	}
	return d, nil
}

func parseQuantity(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: cantidad %q", domain.ErrInvalidInput, raw)
	}
	return n, nil
}
