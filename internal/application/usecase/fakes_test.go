package usecase_test

import (
	"context"
	"time"

	"github.com/tu-usuario/factory-pro/internal/domain/entity"
	"github.com/tu-usuario/factory-pro/internal/domain/repository"
)

// Repos en memoria para los tests de casos de uso. Implementan los puertos
// de dominio sobre mapas; el orden de List sigue el orden de inserción, que
// alcanza para lo que verifican estos tests.

type fakeCustomerRepo struct {
	seq   int64
	items map[int64]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{items: map[int64]*entity.Customer{}}
}

func (f *fakeCustomerRepo) Create(c *entity.Customer) error {
	f.seq++
	c.ID = f.seq
	cp := *c
	f.items[c.ID] = &cp
	return nil
}

func (f *fakeCustomerRepo) GetByID(id int64) (*entity.Customer, error) {
	c, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCustomerRepo) GetByEmail(email string) (*entity.Customer, error) {
	for _, c := range f.items {
		if c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) GetByPhone(phone string) (*entity.Customer, error) {
	for _, c := range f.items {
		if c.Phone == phone {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) Update(c *entity.Customer) error {
	cp := *c
	f.items[c.ID] = &cp
	return nil
}

func (f *fakeCustomerRepo) Delete(id int64) error {
	delete(f.items, id)
	return nil
}

func (f *fakeCustomerRepo) SoftDelete(id int64, at time.Time) error {
	if c, ok := f.items[id]; ok {
		c.DeletedAt = &at
	}
	return nil
}

func (f *fakeCustomerRepo) Restore(id int64) error {
	if c, ok := f.items[id]; ok {
		c.DeletedAt = nil
	}
	return nil
}

func (f *fakeCustomerRepo) List(opts repository.ListOptions) ([]*entity.Customer, error) {
	out := make([]*entity.Customer, 0, len(f.items))
	for i := int64(1); i <= f.seq; i++ {
		if c, ok := f.items[i]; ok {
			cp := *c
			out = append(out, &cp)
		}
	}
	return paginate(out, opts), nil
}

func (f *fakeCustomerRepo) Count() (int, error) { return len(f.items), nil }

type fakeProductRepo struct {
	seq   int64
	items map[int64]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{items: map[int64]*entity.Product{}}
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	f.seq++
	p.ID = f.seq
	cp := *p
	f.items[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	f.items[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) Delete(id int64) error {
	delete(f.items, id)
	return nil
}

func (f *fakeProductRepo) SoftDelete(id int64, at time.Time) error {
	if p, ok := f.items[id]; ok {
		p.DeletedAt = &at
	}
	return nil
}

func (f *fakeProductRepo) Restore(id int64) error {
	if p, ok := f.items[id]; ok {
		p.DeletedAt = nil
	}
	return nil
}

func (f *fakeProductRepo) List(opts repository.ListOptions) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(f.items))
	for i := int64(1); i <= f.seq; i++ {
		if p, ok := f.items[i]; ok {
			cp := *p
			out = append(out, &cp)
		}
	}
	return paginate(out, opts), nil
}

func (f *fakeProductRepo) Count() (int, error) { return len(f.items), nil }

type fakeOrderRepo struct {
	seq   int64
	items map[int64]*entity.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{items: map[int64]*entity.Order{}}
}

func (f *fakeOrderRepo) Create(o *entity.Order) error {
	f.seq++
	o.ID = f.seq
	cp := *o
	f.items[o.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) GetByID(id int64) (*entity.Order, error) {
	o, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrderRepo) Update(o *entity.Order) error {
	cp := *o
	f.items[o.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) Delete(id int64) error {
	delete(f.items, id)
	return nil
}

func (f *fakeOrderRepo) SoftDelete(id int64, at time.Time) error {
	if o, ok := f.items[id]; ok {
		o.DeletedAt = &at
	}
	return nil
}

func (f *fakeOrderRepo) Restore(id int64) error {
	if o, ok := f.items[id]; ok {
		o.DeletedAt = nil
	}
	return nil
}

func (f *fakeOrderRepo) List(opts repository.ListOptions) ([]*entity.Order, error) {
	out := make([]*entity.Order, 0, len(f.items))
	for i := int64(1); i <= f.seq; i++ {
		if o, ok := f.items[i]; ok {
			cp := *o
			out = append(out, &cp)
		}
	}
	return paginate(out, opts), nil
}

func (f *fakeOrderRepo) Count() (int, error) { return len(f.items), nil }

type fakeProductionRepo struct {
	seq   int64
	items map[int64]*entity.Production
}

func newFakeProductionRepo() *fakeProductionRepo {
	return &fakeProductionRepo{items: map[int64]*entity.Production{}}
}

func (f *fakeProductionRepo) Create(p *entity.Production) error {
	f.seq++
	p.ID = f.seq
	cp := *p
	f.items[p.ID] = &cp
	return nil
}

func (f *fakeProductionRepo) GetByID(id int64) (*entity.Production, error) {
	p, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductionRepo) Update(p *entity.Production) error {
	cp := *p
	f.items[p.ID] = &cp
	return nil
}

func (f *fakeProductionRepo) Delete(id int64) error {
	delete(f.items, id)
	return nil
}

func (f *fakeProductionRepo) SoftDelete(id int64, at time.Time) error {
	if p, ok := f.items[id]; ok {
		p.DeletedAt = &at
	}
	return nil
}

func (f *fakeProductionRepo) Restore(id int64) error {
	if p, ok := f.items[id]; ok {
		p.DeletedAt = nil
	}
	return nil
}

func (f *fakeProductionRepo) List(opts repository.ListOptions) ([]*entity.Production, error) {
	out := make([]*entity.Production, 0, len(f.items))
	for i := int64(1); i <= f.seq; i++ {
		if p, ok := f.items[i]; ok {
			cp := *p
			out = append(out, &cp)
		}
	}
	return paginate(out, opts), nil
}

func (f *fakeProductionRepo) Count() (int, error) { return len(f.items), nil }

type fakeUserRepo struct {
	seq   int64
	items map[int64]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{items: map[int64]*entity.User{}}
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	f.seq++
	u.ID = f.seq
	cp := *u
	f.items[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(id int64) (*entity.User, error) {
	u, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range f.items {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(u *entity.User) error {
	cp := *u
	f.items[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) Delete(id int64) error {
	delete(f.items, id)
	return nil
}

func (f *fakeUserRepo) SoftDelete(id int64, at time.Time) error {
	if u, ok := f.items[id]; ok {
		u.DeletedAt = &at
		u.IsActive = false
	}
	return nil
}

func (f *fakeUserRepo) Restore(id int64) error {
	if u, ok := f.items[id]; ok {
		u.DeletedAt = nil
		u.IsActive = true
	}
	return nil
}

func (f *fakeUserRepo) List(opts repository.ListOptions) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(f.items))
	for i := int64(1); i <= f.seq; i++ {
		if u, ok := f.items[i]; ok {
			cp := *u
			out = append(out, &cp)
		}
	}
	return paginate(out, opts), nil
}

func (f *fakeUserRepo) Count() (int, error) { return len(f.items), nil }

// fakeTxRunner ejecuta el callback directo sobre los fakes, sin transacción.
type fakeTxRunner struct {
	customers  *fakeCustomerRepo
	products   *fakeProductRepo
	orders     *fakeOrderRepo
	production *fakeProductionRepo
}

func (f *fakeTxRunner) RunOrder(_ context.Context, fn func(
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
) error) error {
	return fn(f.customers, f.products, f.orders)
}

func (f *fakeTxRunner) RunProduction(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	productionRepo repository.ProductionRepository,
) error) error {
	return fn(f.products, f.production)
}

func paginate[T any](items []*T, opts repository.ListOptions) []*T {
	if opts.Offset >= len(items) {
		return nil
	}
	items = items[opts.Offset:]
	if opts.Limit > 0 && opts.Limit < len(items) {
		items = items[:opts.Limit]
	}
	return items
}
