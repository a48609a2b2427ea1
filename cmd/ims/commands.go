package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jhoicas/inventario-cli/internal/application/dto"
	"github.com/jhoicas/inventario-cli/internal/application/usecase"
	"github.com/jhoicas/inventario-cli/internal/infrastructure/report"
)

func newDBCheckCmd(deps func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "db-check",
		Short: "Prueba la conexión con la base de datos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := deps()
			out := cmd.OutOrStdout()
			if err := a.conn.Ping(cmd.Context()); err != nil {
				a.log.Error().Err(err).Msg("error al conectar con la base de datos")
				color.New(color.FgRed).Fprintln(out, "No se pudo conectar con la base de datos.")
				return nil
			}
			a.log.Info().Msg("conexión con la base de datos establecida")
			color.New(color.FgGreen).Fprintln(out, "Conexión con la base de datos establecida.")
			return nil
		},
	}
}

func newReportCmd(deps func() *app) *cobra.Command {
	var title string
	cmd := &cobra.Command{
		Use:   "report <archivo.pdf|archivo.xlsx>",
		Short: "Genera un reporte del inventario en PDF o en hoja de cálculo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := deps()
			path := args[0]

			gen, err := generatorFor(path)
			if err != nil {
				return err
			}
			if title == "" {
				title = "Inventario"
				if a.cfg.App.Name != "" {
					title = a.cfg.App.Name
				}
			}

			out := cmd.OutOrStdout()
			if err := a.items.Report(cmd.Context(), path, title, gen); err != nil {
				color.New(color.FgRed).Fprintln(out, "No se pudo generar el reporte.")
				return nil
			}
			color.New(color.FgGreen).Fprintf(out, "Reporte generado: %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "título del reporte (por defecto app.name)")
	return cmd
}

func generatorFor(path string) (usecase.ReportGenerator, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return report.NewPDFGenerator(), nil
	case ".xlsx":
		return report.NewXLSXGenerator(), nil
	default:
		return nil, fmt.Errorf("formato de reporte no soportado: %q (use .pdf o .xlsx)", filepath.Ext(path))
	}
}

func newUserCmd(deps func() *app) *cobra.Command {
	user := &cobra.Command{
		Use:   "user",
		Short: "Administración de operadores",
	}

	var username string
	add := &cobra.Command{
		Use:   "add",
		Short: "Registra un operador; la contraseña se lee de la entrada estándar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := deps()
			out := cmd.OutOrStdout()

			fmt.Fprint(out, "Contraseña: ")
			password, err := readLine(bufio.NewReader(cmd.InOrStdin()))
			if err != nil {
				return fmt.Errorf("leer contraseña: %w", err)
			}

			if err := a.users.RegisterUser(cmd.Context(), dto.RegisterUserRequest{
				Username: username,
				Password: password,
			}); err != nil {
				color.New(color.FgRed).Fprintf(out, "No se pudo registrar el usuario: %v\n", err)
				return nil
			}
			color.New(color.FgGreen).Fprintf(out, "Usuario registrado: %s\n", username)
			return nil
		},
	}
	add.Flags().StringVarP(&username, "username", "u", "", "nombre del operador")
	_ = add.MarkFlagRequired("username")

	user.AddCommand(add)
	return user
}

func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
