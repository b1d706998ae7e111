package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Product is catalog data. Order lines snapshot its price at creation
// time; later price changes never touch existing orders.
type Product struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Slug        string    `json:"slug"`
	Price       float64   `json:"price"`
}

// NewProduct validates the catalog fields. The slug is the stable
// external reference and must be unique, enforced by the store.
func NewProduct(title, description, slug string, price float64) (*Product, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("product title: %w", ErrBlankField)
	}
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("product description: %w", ErrBlankField)
	}
	if strings.TrimSpace(slug) == "" {
		return nil, fmt.Errorf("product slug: %w", ErrBlankField)
	}
	if price <= 0 {
		return nil, fmt.Errorf("product price %.2f: %w", price, ErrInvalidPrice)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate product id: %w", err)
	}

	return &Product{
		ID:          id,
		Title:       strings.TrimSpace(title),
		Description: description,
		Slug:        strings.TrimSpace(slug),
		Price:       price,
	}, nil
}
