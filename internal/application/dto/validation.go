package dto

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-cli/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// decimal.Decimal se compara como float64 en gt/gte.
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	return v
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

// Validate aplica las reglas `validate` del struct. Los errores envuelven domain.ErrInvalidInput
// con un mensaje legible del primer campo inválido.
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, describe(verrs[0]))
	}
	return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
}

func describe(fe validator.FieldError) string {
	switch fe.Field() {
	case "Name":
		return "el nombre del producto no puede estar vacío"
	case "Price":
		return fmt.Sprintf("precio inválido: %v", fe.Value())
	case "Quantity":
		return fmt.Sprintf("cantidad negativa: %v", fe.Value())
	case "Username":
		return "usuario inválido"
	case "Password":
		return "la contraseña debe tener al menos 8 caracteres"
	default:
		return fmt.Sprintf("%s no cumple %s", fe.Field(), fe.Tag())
	}
}
