package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCustomer(t *testing.T) *Customer {
	t.Helper()
	c, err := NewCustomer("Test Customer", "customer@test.com", "11999999999", time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return c
}

func testProduct(t *testing.T, price float64) *Product {
	t.Helper()
	p, err := NewProduct("Product", "Desc", "product", price)
	require.NoError(t, err)
	return p
}

func TestNewOrderLine(t *testing.T) {
	product := testProduct(t, 19.99)

	line, err := NewOrderLine(3, product)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, line.ID)
	assert.Equal(t, uuid.Nil, line.OrderID, "order id is assigned by NewOrder")
	assert.Equal(t, 3, line.Quantity)
	assert.InDelta(t, 59.97, line.Total, 1e-9)
	assert.Equal(t, product.ID, line.ProductID)
	assert.Same(t, product, line.Product)
}

func TestNewOrderLine_QuantityMustBePositive(t *testing.T) {
	product := testProduct(t, 10)

	for _, qty := range []int{0, -1, -10} {
		_, err := NewOrderLine(qty, product)
		assert.ErrorIs(t, err, ErrInvalidQuantity, "quantity %d", qty)
	}
}

func TestNewOrderLine_NilProduct(t *testing.T) {
	_, err := NewOrderLine(1, nil)
	assert.ErrorIs(t, err, ErrInvalidProduct)
}

func TestNewOrderLine_IDIsVersion7(t *testing.T) {
	line, err := NewOrderLine(1, testProduct(t, 10))
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), line.ID.Version())
}

func TestNewOrder(t *testing.T) {
	customer := testCustomer(t)
	product := testProduct(t, 10)
	line, err := NewOrderLine(2, product)
	require.NoError(t, err)

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	order, err := NewOrder(customer, []OrderLine{line}, now)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, order.ID)
	assert.Equal(t, uuid.Version(7), order.ID.Version())
	assert.Equal(t, customer.ID, order.CustomerID)
	assert.Same(t, customer, order.Customer)
	assert.Equal(t, now, order.CreatedAt)
	assert.Nil(t, order.UpdatedAt)
	require.Len(t, order.Lines, 1)
	assert.InDelta(t, 20.0, order.Lines[0].Total, 1e-9)
}

func TestNewOrder_NilCustomer(t *testing.T) {
	line, err := NewOrderLine(2, testProduct(t, 10))
	require.NoError(t, err)

	_, err = NewOrder(nil, []OrderLine{line}, time.Now())
	assert.ErrorIs(t, err, ErrInvalidCustomer)
}

func TestNewOrder_EmptyLines(t *testing.T) {
	_, err := NewOrder(testCustomer(t), nil, time.Now())
	assert.ErrorIs(t, err, ErrEmptyOrder)

	_, err = NewOrder(testCustomer(t), []OrderLine{}, time.Now())
	assert.ErrorIs(t, err, ErrEmptyOrder)
}

func TestNewOrder_StampsLineOwnership(t *testing.T) {
	customer := testCustomer(t)
	product := testProduct(t, 5)
	l1, err := NewOrderLine(3, product)
	require.NoError(t, err)
	l2, err := NewOrderLine(1, product)
	require.NoError(t, err)

	input := []OrderLine{l1, l2}
	order, err := NewOrder(customer, input, time.Now())
	require.NoError(t, err)

	require.Len(t, order.Lines, 2)
	assert.Equal(t, l1.ID, order.Lines[0].ID)
	assert.Equal(t, l2.ID, order.Lines[1].ID)
	for _, line := range order.Lines {
		assert.Equal(t, order.ID, line.OrderID)
	}

	// The caller's slice is untouched.
	assert.Equal(t, uuid.Nil, input[0].OrderID)
	assert.Equal(t, uuid.Nil, input[1].OrderID)
}

func TestOrderLineTotal_IsSnapshot(t *testing.T) {
	product := testProduct(t, 250)
	line, err := NewOrderLine(2, product)
	require.NoError(t, err)
	require.InDelta(t, 500.0, line.Total, 1e-9)

	// A later price change never reaches an existing line.
	product.Price = 999
	assert.InDelta(t, 500.0, line.Total, 1e-9)
}
