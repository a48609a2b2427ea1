package postgres

import (
	"context"
	"fmt"
	"sync"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/inventario-cli/pkg/config"
)

// Querier abstrae pool o conexión para que los repositorios ejecuten sentencias sueltas.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var (
	_ Querier = (*pgxpool.Pool)(nil)
	_ Querier = (*Connector)(nil)
)

// NewPool crea un pool de conexiones PostgreSQL usando la configuración de la app.
// No conecta de inmediato: cada sentencia toma una conexión del pool y la devuelve al terminar.
// Sin reintentos: una sentencia que no logra conectar falla con el error del driver.
func NewPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	dsn, err := cfg.ConnectionString()
	if err != nil {
		return nil, err
	}

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	// Una sola sesión de operador: pocas conexiones, ninguna abierta en reposo.
	poolConfig.MaxConns = 4
	poolConfig.MinConns = 0
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute
	if poolConfig.ConnConfig.ConnectTimeout == 0 {
		poolConfig.ConnConfig.ConnectTimeout = 10 * time.Second
	}

	// Registrar codec para NUMERIC/DECIMAL -> shopspring/decimal (todas las conexiones del pool).
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	return pool, nil
}

// Connector crea el pool en el primer uso. Si la configuración es inválida cada operación
// recibe el error (y lo registra) en lugar de abortar el proceso al arrancar.
type Connector struct {
	cfg  config.DBConfig
	mu   sync.Mutex
	pool *pgxpool.Pool
}

// NewConnector construye el conector con la configuración de base de datos.
func NewConnector(cfg config.DBConfig) *Connector {
	return &Connector{cfg: cfg}
}

// Pool devuelve el pool, creándolo si hace falta.
func (c *Connector) Pool(ctx context.Context) (*pgxpool.Pool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pool != nil {
		return c.pool, nil
	}
	pool, err := NewPool(ctx, c.cfg)
	if err != nil {
		return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	c.pool = pool
	return pool, nil
}

// Ping verifica que el almacén responda.
func (c *Connector) Ping(ctx context.Context) error {
	pool, err := c.Pool(ctx)
	if err != nil {
		return err
	}
	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("ping DB: %w", err)
	}
	return nil
}

// Exec implementa Querier.
func (c *Connector) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	pool, err := c.Pool(ctx)
	if err != nil {
		return pgconn.CommandTag{}, err
	}
	return pool.Exec(ctx, sql, args...)
}

// Query implementa Querier.
func (c *Connector) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	pool, err := c.Pool(ctx)
	if err != nil {
		return nil, err
	}
	return pool.Query(ctx, sql, args...)
}

// QueryRow implementa Querier.
func (c *Connector) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	pool, err := c.Pool(ctx)
	if err != nil {
		return errRow{err: err}
	}
	return pool.QueryRow(ctx, sql, args...)
}

// Close libera el pool si llegó a crearse.
func (c *Connector) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pool != nil {
		c.pool.Close()
		c.pool = nil
	}
}

type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }
