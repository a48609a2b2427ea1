package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/inventario-cli/internal/application/auth"
	"github.com/jhoicas/inventario-cli/internal/application/usecase"
	"github.com/jhoicas/inventario-cli/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-cli/internal/interfaces/console"
	"github.com/jhoicas/inventario-cli/pkg/config"
	"github.com/jhoicas/inventario-cli/pkg/logger"
)

// app dependencias compartidas por todos los subcomandos.
type app struct {
	cfg   *config.Config
	log   *logger.Logger
	conn  *postgres.Connector
	users *auth.AuthUseCase
	items *usecase.ProductUseCase
}

func newRootCmd() *cobra.Command {
	var configPath string
	var a *app

	root := &cobra.Command{
		Use:           "ims",
		Short:         "Sistema de gestión de inventario por consola",
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a = bootstrap(cmd.Context(), configPath)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			a.close()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := console.New(console.Config{
				In:         cmd.InOrStdin(),
				Out:        cmd.OutOrStdout(),
				AppName:    a.cfg.App.Name,
				AppVersion: a.cfg.App.Version,
			}, a.items, a.users, a.log)
			if err := c.Run(cmd.Context()); err != nil {
				a.log.Error().Err(err).Msg("la sesión terminó con error")
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", config.DefaultFile, "archivo de configuración (.properties)")

	root.AddCommand(
		newDBCheckCmd(func() *app { return a }),
		newUserCmd(func() *app { return a }),
		newReportCmd(func() *app { return a }),
	)
	return root
}

// bootstrap nunca falla: una configuración o un log inaccesible se registran y se sigue con valores por defecto.
func bootstrap(ctx context.Context, configPath string) *app {
	cfg, cfgErr := config.Load(configPath)

	log, logErr := logger.New(logger.Config{Level: cfg.Log.Level, File: cfg.Log.File})
	if logErr != nil {
		log = logger.NewWithWriter(os.Stdout, cfg.Log.Level)
		log.Warn().Err(logErr).Msg("no se pudo abrir el archivo de log; solo consola")
	}
	if cfgErr != nil {
		log.Warn().Err(cfgErr).Msg("error al cargar la configuración; se usan valores por defecto")
	}
	log.Debug().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("version", cfg.App.Version).
		Msg("iniciando aplicación")

	conn := postgres.NewConnector(cfg.DB)

	return &app{
		cfg:   cfg,
		log:   log,
		conn:  conn,
		users: auth.NewAuthUseCase(postgres.NewUserRepository(conn), log),
		items: usecase.NewProductUseCase(postgres.NewProductRepository(conn), log, usecase.ImportOptions{
			ContinueOnBadNumber: cfg.Import.ContinueOnBadNumber,
			CheckDuplicates:     cfg.Import.CheckDuplicates,
		}),
	}
}

func (a *app) close() {
	if a == nil {
		return
	}
	a.conn.Close()
	_ = a.log.Close()
}
