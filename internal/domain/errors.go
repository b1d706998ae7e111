package domain

import "errors"

// Validation failures raised by entity constructors. Callers match with
// errors.Is and decide how to surface them.
var (
	ErrInvalidCustomer = errors.New("order requires a customer")
	ErrEmptyOrder      = errors.New("order requires at least one line")
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
	ErrInvalidProduct  = errors.New("order line requires a product")
	ErrBlankField      = errors.New("field must not be blank")
	ErrInvalidPrice    = errors.New("price must be greater than zero")
)
