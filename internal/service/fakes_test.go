package service

import (
	"context"
	"io"
	"sync"
	"time"

	"bugstore/internal/domain"
	"bugstore/internal/logger"
	"bugstore/internal/repository"

	"github.com/google/uuid"
)

func testLogger() *logger.Logger {
	return logger.NewWithWriter("test", io.Discard)
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type fakeCustomerRepo struct {
	customers    map[uuid.UUID]*domain.Customer
	getByIDCalls int
	createErr    error
	updateErr    error
}

func newFakeCustomerRepo(customers ...*domain.Customer) *fakeCustomerRepo {
	r := &fakeCustomerRepo{customers: map[uuid.UUID]*domain.Customer{}}
	for _, c := range customers {
		r.customers[c.ID] = c
	}
	return r
}

func (r *fakeCustomerRepo) Create(ctx context.Context, c *domain.Customer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if r.createErr != nil {
		return r.createErr
	}
	r.customers[c.ID] = c
	return nil
}

func (r *fakeCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.getByIDCalls++
	c, ok := r.customers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return c, nil
}

func (r *fakeCustomerRepo) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, c := range r.customers {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeCustomerRepo) GetByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, c := range r.customers {
		if c.Phone == phone {
			return c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeCustomerRepo) List(ctx context.Context, limit, offset int) ([]domain.Customer, int, error) {
	out := make([]domain.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, *c)
	}
	if offset >= len(out) {
		return nil, len(r.customers), nil
	}
	end := offset + limit
	if end > len(out) {
		end = len(out)
	}
	return out[offset:end], len(r.customers), nil
}

func (r *fakeCustomerRepo) Update(ctx context.Context, c *domain.Customer) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.customers[c.ID]; !ok {
		return repository.ErrNotFound
	}
	r.customers[c.ID] = c
	return nil
}

func (r *fakeCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.customers[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.customers, id)
	return nil
}

type fakeProductRepo struct {
	products     map[uuid.UUID]*domain.Product
	getByIDCalls int
	createErr    error
	updateErr    error
}

func newFakeProductRepo(products ...*domain.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: map[uuid.UUID]*domain.Product{}}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(ctx context.Context, p *domain.Product) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.getByIDCalls++
	p, ok := r.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return p, nil
}

func (r *fakeProductRepo) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, p := range r.products {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeProductRepo) List(ctx context.Context, limit, offset int) ([]domain.Product, int, error) {
	out := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	if offset >= len(out) {
		return nil, len(r.products), nil
	}
	end := offset + limit
	if end > len(out) {
		end = len(out)
	}
	return out[offset:end], len(r.products), nil
}

func (r *fakeProductRepo) Update(ctx context.Context, p *domain.Product) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.products[p.ID]; !ok {
		return repository.ErrNotFound
	}
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.products[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

type fakeOrderRepo struct {
	orders      map[uuid.UUID]*domain.Order
	createCalls int
	createErr   error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[uuid.UUID]*domain.Order{}}
}

func (r *fakeOrderRepo) Create(ctx context.Context, o *domain.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.createCalls++
	if r.createErr != nil {
		return r.createErr
	}
	r.orders[o.ID] = o
	return nil
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	o, ok := r.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return o, nil
}

type fakePublisher struct {
	mu     sync.Mutex
	orders []*domain.Order
	err    error
}

func (p *fakePublisher) OrderCreated(ctx context.Context, o *domain.Order) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.orders = append(p.orders, o)
	return nil
}

func (p *fakePublisher) published() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.orders)
}
