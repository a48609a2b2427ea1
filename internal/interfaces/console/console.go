// Package console implementa la sesión interactiva: inicio de sesión y menú de inventario.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"github.com/jhoicas/inventario-cli/internal/application/dto"
	"github.com/jhoicas/inventario-cli/internal/application/usecase"
	"github.com/jhoicas/inventario-cli/pkg/logger"
)

// Inventory operaciones del catálogo que usa el menú.
type Inventory interface {
	Add(ctx context.Context, in dto.CreateProductRequest) error
	Remove(ctx context.Context, name string) (bool, error)
	Update(ctx context.Context, currentName string, edit usecase.EditFunc) error
	List(ctx context.Context, w io.Writer) error
	Export(ctx context.Context, path string) error
	Import(ctx context.Context, path string) (usecase.ImportResult, error)
}

// Authenticator puerta de acceso de la sesión.
type Authenticator interface {
	Verify(ctx context.Context, username, password string) bool
}

// Config entrada/salida y metadatos mostrados en el encabezado.
type Config struct {
	In         io.Reader
	Out        io.Writer
	AppName    string
	AppVersion string
}

// Console sesión de un único operador; bloquea en cada lectura y ejecuta una operación a la vez.
type Console struct {
	in        *bufio.Reader
	out       io.Writer
	appName   string
	version   string
	inventory Inventory
	auth      Authenticator
	log       *logger.Logger

	title *color.Color
	warn  *color.Color
}

// New construye la consola.
func New(cfg Config, inventory Inventory, auth Authenticator, log *logger.Logger) *Console {
	name := cfg.AppName
	if name == "" {
		name = "Sistema de Gestión de Inventario"
	}
	return &Console{
		in:        bufio.NewReader(cfg.In),
		out:       cfg.Out,
		appName:   name,
		version:   cfg.AppVersion,
		inventory: inventory,
		auth:      auth,
		log:       log,
		title:     color.New(color.FgCyan, color.Bold),
		warn:      color.New(color.FgRed),
	}
}

const (
	optAdd = iota + 1
	optRemove
	optUpdate
	optView
	optSave
	optLoad
	optExit
)

// Run pide credenciales y, si son válidas, atiende el menú hasta que el operador elige salir
// o se cierra la entrada. Los errores de las operaciones ya quedaron registrados y no terminan la sesión.
func (c *Console) Run(ctx context.Context) error {
	username, err := c.prompt("Usuario: ")
	if err != nil {
		return ignoreEOF(err)
	}
	password, err := c.prompt("Contraseña: ")
	if err != nil {
		return ignoreEOF(err)
	}

	if !c.auth.Verify(ctx, username, password) {
		c.log.Error().Str("usuario", username).Msg("intento de inicio de sesión fallido")
		c.warn.Fprintln(c.out, "Usuario o contraseña inválidos. Acceso denegado.")
		return nil
	}
	c.log.Info().Str("usuario", username).Str("sesion", uuid.NewString()).Msg("sesión iniciada")

	for {
		c.printMenu()
		line, err := c.prompt("Elija una opción: ")
		if err != nil {
			return ignoreEOF(err)
		}
		choice, convErr := strconv.Atoi(line)
		if convErr != nil || choice < optAdd || choice > optExit {
			c.warn.Fprintln(c.out, "Opción inválida. Intente de nuevo.")
			continue
		}
		if choice == optExit {
			fmt.Fprintln(c.out, "Saliendo del sistema. ¡Hasta luego!")
			return nil
		}
		if err := c.dispatch(ctx, choice); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			if !isOperationError(err) {
				return err
			}
		}
	}
}

func (c *Console) printMenu() {
	fmt.Fprintln(c.out)
	header := "--- " + c.appName
	if c.version != "" {
		header += " v" + c.version
	}
	c.title.Fprintln(c.out, header+" ---")
	fmt.Fprintln(c.out, "1. Agregar producto")
	fmt.Fprintln(c.out, "2. Eliminar producto")
	fmt.Fprintln(c.out, "3. Actualizar producto")
	fmt.Fprintln(c.out, "4. Ver inventario")
	fmt.Fprintln(c.out, "5. Guardar inventario en archivo")
	fmt.Fprintln(c.out, "6. Cargar inventario desde archivo")
	fmt.Fprintln(c.out, "7. Salir")
}

func (c *Console) dispatch(ctx context.Context, choice int) error {
	switch choice {
	case optAdd:
		return c.add(ctx)
	case optRemove:
		name, err := c.prompt("Nombre del producto a eliminar: ")
		if err != nil {
			return err
		}
		_, err = c.inventory.Remove(ctx, name)
		return operationError(err)
	case optUpdate:
		name, err := c.prompt("Nombre del producto a actualizar: ")
		if err != nil {
			return err
		}
		return operationError(c.inventory.Update(ctx, name, c.editProduct))
	case optView:
		return operationError(c.inventory.List(ctx, c.out))
	case optSave:
		path, err := c.prompt("Archivo donde guardar el inventario: ")
		if err != nil {
			return err
		}
		return operationError(c.inventory.Export(ctx, path))
	case optLoad:
		path, err := c.prompt("Archivo desde donde cargar el inventario: ")
		if err != nil {
			return err
		}
		_, err = c.inventory.Import(ctx, path)
		return operationError(err)
	}
	return nil
}

func (c *Console) add(ctx context.Context) error {
	name, err := c.prompt("Nombre del producto: ")
	if err != nil {
		return err
	}
	description, err := c.prompt("Descripción del producto: ")
	if err != nil {
		return err
	}
	rawPrice, err := c.prompt("Precio del producto: ")
	if err != nil {
		return err
	}
	price, err := parsePrice(rawPrice)
	if err != nil {
		c.log.Error().Msgf("precio inválido: %q", rawPrice)
		return operationError(err)
	}
	rawQty, err := c.prompt("Cantidad del producto: ")
	if err != nil {
		return err
	}
	qty, err := parseQuantity(rawQty)
	if err != nil {
		c.log.Error().Msgf("cantidad inválida: %q", rawQty)
		return operationError(err)
	}
	return operationError(c.inventory.Add(ctx, dto.CreateProductRequest{
		Name:        name,
		Description: description,
		Price:       price,
		Quantity:    qty,
	}))
}

// prompt escribe la pregunta y lee una línea sin el salto final.
func (c *Console) prompt(question string) (string, error) {
	fmt.Fprint(c.out, question)
	line, err := c.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// opError marca errores de una operación ya registrados por el caso de uso.
type opError struct{ err error }

func (e opError) Error() string { return e.err.Error() }
func (e opError) Unwrap() error { return e.err }

func operationError(err error) error {
	if err == nil {
		return nil
	}
	return opError{err: err}
}

func isOperationError(err error) bool {
	var oe opError
	return errors.As(err, &oe)
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
