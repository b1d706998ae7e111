package repository

import (
	"context"
	"database/sql"
	"fmt"

	"bugstore/internal/domain"

	"github.com/google/uuid"
)

type CustomerRepositoryInterface interface {
	Create(ctx context.Context, c *domain.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	GetByPhone(ctx context.Context, phone string) (*domain.Customer, error)
	List(ctx context.Context, limit, offset int) ([]domain.Customer, int, error)
	Update(ctx context.Context, c *domain.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CustomerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) CustomerRepositoryInterface {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO customers (id, name, email, phone, birth_date)
		VALUES ($1, $2, $3, $4, $5)
	`, c.ID, c.Name, c.Email, c.Phone, c.BirthDate)
	if err != nil {
		return fmt.Errorf("insert customer: %w", classify(err))
	}
	return nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	return r.getBy(ctx, "id = $1", id)
}

func (r *CustomerRepository) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	return r.getBy(ctx, "email = $1", email)
}

func (r *CustomerRepository) GetByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	return r.getBy(ctx, "phone = $1", phone)
}

func (r *CustomerRepository) getBy(ctx context.Context, where string, arg any) (*domain.Customer, error) {
	var c domain.Customer
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, phone, birth_date FROM customers WHERE `+where,
		arg,
	).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.BirthDate)
	if err != nil {
		return nil, fmt.Errorf("select customer: %w", classify(err))
	}
	return &c, nil
}

func (r *CustomerRepository) List(ctx context.Context, limit, offset int) ([]domain.Customer, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM customers`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count customers: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, email, phone, birth_date FROM customers
		ORDER BY id LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var out []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.BirthDate); err != nil {
			return nil, 0, fmt.Errorf("scan customer: %w", err)
		}
		out = append(out, c)
	}
	return out, total, rows.Err()
}

func (r *CustomerRepository) Update(ctx context.Context, c *domain.Customer) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE customers SET name = $2, email = $3, phone = $4, birth_date = $5
		WHERE id = $1
	`, c.ID, c.Name, c.Email, c.Phone, c.BirthDate)
	if err != nil {
		return fmt.Errorf("update customer: %w", classify(err))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", classify(err))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
