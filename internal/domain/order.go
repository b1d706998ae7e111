package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// OrderLine snapshots the product reference and the computed total at
// order-creation time. Total is frozen: it is never recomputed from a
// live product lookup. The line points back to its order by id only.
type OrderLine struct {
	ID        uuid.UUID `json:"id"`
	OrderID   uuid.UUID `json:"order_id"`
	Quantity  int       `json:"quantity"`
	Total     float64   `json:"total"`
	ProductID uuid.UUID `json:"product_id"`
	Product   *Product  `json:"product,omitempty"`
}

// Order is the aggregate root. It is constructed together with its
// lines in one step and is read-only afterwards; there is no edit path.
type Order struct {
	ID         uuid.UUID  `json:"id"`
	CustomerID uuid.UUID  `json:"customer_id"`
	Customer   *Customer  `json:"customer,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
	Lines      []OrderLine `json:"lines"`
}

// NewOrderLine builds a line for quantity units of product.
// Total = quantity * product.Price, computed exactly once.
func NewOrderLine(quantity int, product *Product) (OrderLine, error) {
	if quantity <= 0 {
		return OrderLine{}, fmt.Errorf("quantity %d: %w", quantity, ErrInvalidQuantity)
	}
	if product == nil {
		return OrderLine{}, ErrInvalidProduct
	}

	id, err := uuid.NewV7()
	if err != nil {
		return OrderLine{}, fmt.Errorf("generate line id: %w", err)
	}

	return OrderLine{
		ID:        id,
		Quantity:  quantity,
		Total:     float64(quantity) * product.Price,
		ProductID: product.ID,
		Product:   product,
	}, nil
}

// NewOrder builds the aggregate from a resolved customer and a non-empty
// line list. The empty-order guard lives here, not only in the workflow,
// so no code path can hand a zero-line order to storage. Lines are copied
// and stamped with the new order id; the caller's slice stays untouched.
func NewOrder(customer *Customer, lines []OrderLine, now time.Time) (*Order, error) {
	if customer == nil {
		return nil, ErrInvalidCustomer
	}
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate order id: %w", err)
	}

	owned := make([]OrderLine, len(lines))
	copy(owned, lines)
	for i := range owned {
		owned[i].OrderID = id
	}

	return &Order{
		ID:         id,
		CustomerID: customer.ID,
		Customer:   customer,
		CreatedAt:  now,
		Lines:      owned,
	}, nil
}
