package repository

import (
	"context"
	"database/sql"
	"fmt"

	"bugstore/internal/domain"

	"github.com/google/uuid"
)

type OrderRepositoryInterface interface {
	Create(ctx context.Context, o *domain.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
}

type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) OrderRepositoryInterface {
	return &OrderRepository{db: db}
}

// Create persists the order and every line in one transaction: either
// the whole aggregate lands or nothing does.
func (r *OrderRepository) Create(ctx context.Context, o *domain.Order) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (id, customer_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`, o.ID, o.CustomerID, o.CreatedAt, o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert order: %w", classify(err))
	}

	for i, line := range o.Lines {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_lines (id, order_id, line_no, product_id, quantity, total)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, line.ID, line.OrderID, i, line.ProductID, line.Quantity, line.Total)
		if err != nil {
			return fmt.Errorf("insert order line %s: %w", line.ProductID, classify(err))
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit order: %w", err)
	}
	return nil
}

// GetByID loads the aggregate eagerly: the customer, every line in
// insertion order, and each line's product snapshot source.
func (r *OrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT o.id, o.customer_id, o.created_at, o.updated_at,
		       c.name, c.email, c.phone, c.birth_date,
		       l.id, l.quantity, l.total, l.product_id,
		       p.title, p.description, p.slug, p.price
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		JOIN order_lines l ON l.order_id = o.id
		JOIN products p ON p.id = l.product_id
		WHERE o.id = $1
		ORDER BY l.line_no
	`, id)
	if err != nil {
		return nil, fmt.Errorf("select order: %w", err)
	}
	defer rows.Close()

	var order *domain.Order
	for rows.Next() {
		var (
			customer domain.Customer
			line     domain.OrderLine
			product  domain.Product
			oid      uuid.UUID
			created  sql.NullTime
			updated  sql.NullTime
		)
		err := rows.Scan(
			&oid, &customer.ID, &created, &updated,
			&customer.Name, &customer.Email, &customer.Phone, &customer.BirthDate,
			&line.ID, &line.Quantity, &line.Total, &product.ID,
			&product.Title, &product.Description, &product.Slug, &product.Price,
		)
		if err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}

		if order == nil {
			order = &domain.Order{
				ID:         oid,
				CustomerID: customer.ID,
				Customer:   &customer,
				CreatedAt:  created.Time,
			}
			if updated.Valid {
				t := updated.Time
				order.UpdatedAt = &t
			}
		}

		p := product
		line.OrderID = oid
		line.ProductID = p.ID
		line.Product = &p
		order.Lines = append(order.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}
	if order == nil {
		return nil, fmt.Errorf("select order %s: %w", id, ErrNotFound)
	}
	return order, nil
}
