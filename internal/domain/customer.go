package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Customer is referenced by orders but never owned by them.
type Customer struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	BirthDate time.Time `json:"birth_date"`
}

// NewCustomer validates and trims the textual fields and assigns a
// time-ordered identity.
func NewCustomer(name, email, phone string, birthDate time.Time) (*Customer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("customer name: %w", ErrBlankField)
	}
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("customer email: %w", ErrBlankField)
	}
	if strings.TrimSpace(phone) == "" {
		return nil, fmt.Errorf("customer phone: %w", ErrBlankField)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate customer id: %w", err)
	}

	return &Customer{
		ID:        id,
		Name:      strings.TrimSpace(name),
		Email:     strings.TrimSpace(email),
		Phone:     strings.TrimSpace(phone),
		BirthDate: birthDate,
	}, nil
}
