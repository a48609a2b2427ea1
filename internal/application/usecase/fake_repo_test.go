package usecase_test

import (
	"context"

	"github.com/jhoicas/inventario-cli/internal/domain/entity"
	"github.com/jhoicas/inventario-cli/internal/domain/repository"
)

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

// fakeProductRepo catálogo en memoria que conserva el orden de inserción y cuenta escrituras.
type fakeProductRepo struct {
	rows   []*entity.Product
	writes int
	reads  int

	getErr    error
	createErr error
	updateErr error
	deleteErr error
	listErr   error
}

func newFakeRepo(seed ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{}
	for _, p := range seed {
		r.rows = append(r.rows, p.Clone())
	}
	return r
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.writes++
	r.rows = append(r.rows, p.Clone())
	return nil
}

func (r *fakeProductRepo) GetByName(_ context.Context, name string) (*entity.Product, error) {
	r.reads++
	if r.getErr != nil {
		return nil, r.getErr
	}
	for _, p := range r.rows {
		if p.Name == name {
			return p.Clone(), nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(_ context.Context, currentName string, p *entity.Product) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.writes++
	for i, row := range r.rows {
		if row.Name == currentName {
			r.rows[i] = p.Clone()
		}
	}
	return nil
}

func (r *fakeProductRepo) DeleteByName(_ context.Context, name string) (int64, error) {
	if r.deleteErr != nil {
		return 0, r.deleteErr
	}
	r.writes++
	var n int64
	kept := r.rows[:0]
	for _, row := range r.rows {
		if row.Name == name {
			n++
			continue
		}
		kept = append(kept, row)
	}
	r.rows = kept
	return n, nil
}

func (r *fakeProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]*entity.Product, 0, len(r.rows))
	for _, p := range r.rows {
		out = append(out, p.Clone())
	}
	return out, nil
}

func (r *fakeProductRepo) find(name string) *entity.Product {
	for _, p := range r.rows {
		if p.Name == name {
			return p
		}
	}
	return nil
}
