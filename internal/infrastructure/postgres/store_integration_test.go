package postgres_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jhoicas/inventario-cli/internal/domain"
	"github.com/jhoicas/inventario-cli/internal/domain/entity"
	"github.com/jhoicas/inventario-cli/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-cli/internal/infrastructure/postgres/migrations"
	"github.com/jhoicas/inventario-cli/pkg/config"
)

const skipIntegrationTests = "IMS_SKIP_INTEGRATION_TESTS"

// StoreSuite levanta un PostgreSQL real (testcontainers), aplica el esquema y prueba los repositorios.
type StoreSuite struct {
	suite.Suite
	ctx         context.Context
	pgContainer *tcpostgres.PostgresContainer
	pool        *pgxpool.Pool
	products    *postgres.ProductRepo
	users       *postgres.UserRepo
}

func (s *StoreSuite) SetupSuite() {
	s.ctx = context.Background()
	var err error

	s.pgContainer, err = tcpostgres.Run(s.ctx,
		"postgres:17.5-alpine",
		tcpostgres.WithDatabase("ims"),
		tcpostgres.WithUsername("ims"),
		tcpostgres.WithPassword("ims"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Minute),
		),
	)
	require.NoError(s.T(), err, "levantar contenedor PostgreSQL")

	connStr, err := s.pgContainer.ConnectionString(s.ctx, "sslmode=disable")
	require.NoError(s.T(), err)

	src, err := iofs.New(migrations.FS, ".")
	require.NoError(s.T(), err)
	m, err := migrate.NewWithSourceInstance("iofs", src, connStr)
	require.NoError(s.T(), err)
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		require.NoError(s.T(), err, "aplicar migraciones")
	}
	_, _ = m.Close()

	// El pool se construye igual que en producción: URL + credenciales por separado.
	s.pool, err = postgres.NewPool(s.ctx, config.DBConfig{URL: connStr})
	require.NoError(s.T(), err)
	require.NoError(s.T(), s.pool.Ping(s.ctx))

	s.products = postgres.NewProductRepository(s.pool)
	s.users = postgres.NewUserRepository(s.pool)
}

func (s *StoreSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
	if s.pgContainer != nil {
		_ = s.pgContainer.Terminate(s.ctx)
	}
}

func (s *StoreSuite) SetupTest() {
	_, err := s.pool.Exec(s.ctx, "TRUNCATE TABLE products, users")
	require.NoError(s.T(), err)
}

func TestStoreIntegration(t *testing.T) {
	if os.Getenv(skipIntegrationTests) == "1" {
		t.Skip("integración omitida por " + skipIntegrationTests)
	}
	suite.Run(t, new(StoreSuite))
}

func widget() *entity.Product {
	return &entity.Product{
		Name:        "Widget",
		Description: "A widget",
		Price:       decimal.RequireFromString("9.99"),
		Quantity:    10,
	}
}

func (s *StoreSuite) TestCreateAndGetByName() {
	require.NoError(s.T(), s.products.Create(s.ctx, widget()))

	got, err := s.products.GetByName(s.ctx, "Widget")
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal("A widget", got.Description)
	s.True(got.Price.Equal(decimal.RequireFromString("9.99")))
	s.Equal(10, got.Quantity)
}

func (s *StoreSuite) TestGetByName_NoExiste() {
	got, err := s.products.GetByName(s.ctx, "Fantasma")
	s.NoError(err)
	s.Nil(got)
}

func (s *StoreSuite) TestCreate_DuplicadoPorConstraint() {
	s.Require().NoError(s.products.Create(s.ctx, widget()))

	err := s.products.Create(s.ctx, widget())
	s.ErrorIs(err, domain.ErrDuplicate)
}

func (s *StoreSuite) TestUpdate_RenombraConClaveOriginal() {
	s.Require().NoError(s.products.Create(s.ctx, widget()))

	changed := widget()
	changed.Name = "Gadget"
	changed.Quantity = 3
	s.Require().NoError(s.products.Update(s.ctx, "Widget", changed))

	old, err := s.products.GetByName(s.ctx, "Widget")
	s.NoError(err)
	s.Nil(old)

	renamed, err := s.products.GetByName(s.ctx, "Gadget")
	s.Require().NoError(err)
	s.Require().NotNil(renamed)
	s.Equal(3, renamed.Quantity)
	s.Equal("A widget", renamed.Description)
}

func (s *StoreSuite) TestUpdate_ColisionDeNombre() {
	s.Require().NoError(s.products.Create(s.ctx, widget()))
	other := widget()
	other.Name = "Gadget"
	s.Require().NoError(s.products.Create(s.ctx, other))

	clash := widget()
	clash.Name = "Gadget"
	err := s.products.Update(s.ctx, "Widget", clash)
	s.ErrorIs(err, domain.ErrDuplicate)
}

func (s *StoreSuite) TestUpdate_FilaInexistente() {
	err := s.products.Update(s.ctx, "Fantasma", widget())
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *StoreSuite) TestDeleteByName() {
	s.Require().NoError(s.products.Create(s.ctx, widget()))

	n, err := s.products.DeleteByName(s.ctx, "Widget")
	s.NoError(err)
	s.Equal(int64(1), n)

	n, err = s.products.DeleteByName(s.ctx, "Widget")
	s.NoError(err)
	s.Equal(int64(0), n)
}

func (s *StoreSuite) TestList() {
	list, err := s.products.List(s.ctx)
	s.Require().NoError(err)
	s.Empty(list)

	s.Require().NoError(s.products.Create(s.ctx, widget()))
	other := widget()
	other.Name = "Gadget"
	other.Description = ""
	s.Require().NoError(s.products.Create(s.ctx, other))

	list, err = s.products.List(s.ctx)
	s.Require().NoError(err)
	s.Len(list, 2)
}

func (s *StoreSuite) TestUsers() {
	s.Require().NoError(s.users.Create(s.ctx, &entity.User{Username: "alice", PasswordHash: "$2a$hash"}))

	u, err := s.users.GetByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Require().NotNil(u)
	s.Equal("$2a$hash", u.PasswordHash)

	missing, err := s.users.GetByUsername(s.ctx, "bob")
	s.NoError(err)
	s.Nil(missing)

	err = s.users.Create(s.ctx, &entity.User{Username: "alice", PasswordHash: "x"})
	s.ErrorIs(err, domain.ErrDuplicate)
}
