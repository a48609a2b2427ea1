package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventario-cli/internal/domain"
	"github.com/jhoicas/inventario-cli/internal/domain/entity"
	"github.com/jhoicas/inventario-cli/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productsTable = "products"

var productColumns = []string{"name", "COALESCE(description, '')", "price", "quantity"}

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o Connector).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create inserta una fila nueva. Si el esquema tiene UNIQUE(name) la violación se traduce a ErrDuplicate.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query, args, err := psql.Insert(productsTable).
		Columns("name", "description", "price", "quantity").
		Values(product.Name, product.Description, product.Price, product.Quantity).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert product: %w", err)
	}
	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrDuplicate, product.Name)
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByName obtiene un producto por nombre.
func (r *ProductRepo) GetByName(ctx context.Context, name string) (*entity.Product, error) {
	query, args, err := psql.Select(productColumns...).
		From(productsTable).
		Where(sq.Eq{"name": name}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get product: %w", err)
	}
	var p entity.Product
	err = r.q.QueryRow(ctx, query, args...).Scan(&p.Name, &p.Description, &p.Price, &p.Quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update reescribe la fila identificada por currentName con todos los campos de product.
func (r *ProductRepo) Update(ctx context.Context, currentName string, product *entity.Product) error {
	query, args, err := psql.Update(productsTable).
		Set("name", product.Name).
		Set("description", product.Description).
		Set("price", product.Price).
		Set("quantity", product.Quantity).
		Where(sq.Eq{"name": currentName}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update product: %w", err)
	}
	cmd, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrDuplicate, product.Name)
		}
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, currentName)
	}
	return nil
}

// DeleteByName elimina las filas con ese nombre y devuelve cuántas se borraron.
func (r *ProductRepo) DeleteByName(ctx context.Context, name string) (int64, error) {
	query, args, err := psql.Delete(productsTable).Where(sq.Eq{"name": name}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete product: %w", err)
	}
	cmd, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete product: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// List devuelve todo el catálogo. Sin ORDER BY: el orden lo define el almacén.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	query, args, err := psql.Select(productColumns...).From(productsTable).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list products: %w", err)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.Name, &p.Description, &p.Price, &p.Quantity); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
