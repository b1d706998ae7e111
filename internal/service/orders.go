package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bugstore/internal/apperr"
	"bugstore/internal/domain"
	"bugstore/internal/logger"
	"bugstore/internal/repository"

	"github.com/google/uuid"
)

const publishTimeout = 5 * time.Second

// LineInput is one requested (product, quantity) pair. Positional order
// is significant: resolution happens strictly in sequence so the first
// missing product is the one reported.
type LineInput struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

type OrderServiceInterface interface {
	CreateOrder(ctx context.Context, customerID uuid.UUID, lines []LineInput) (*domain.Order, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error)
}

type OrderService struct {
	orders    repository.OrderRepositoryInterface
	customers repository.CustomerRepositoryInterface
	products  repository.ProductRepositoryInterface
	clock     domain.Clock
	publisher OrderEventPublisher
	log       *logger.Logger
}

func NewOrderService(
	orders repository.OrderRepositoryInterface,
	customers repository.CustomerRepositoryInterface,
	products repository.ProductRepositoryInterface,
	clock domain.Clock,
	publisher OrderEventPublisher,
	log *logger.Logger,
) OrderServiceInterface {
	return &OrderService{
		orders:    orders,
		customers: customers,
		products:  products,
		clock:     clock,
		publisher: publisher,
		log:       log,
	}
}

// CreateOrder runs the pricing workflow: resolve the customer, resolve
// every requested product in order, snapshot prices into lines, build
// the aggregate and persist it in one transaction. Exactly one attempt
// per call; no partial commits.
func (s *OrderService) CreateOrder(ctx context.Context, customerID uuid.UUID, lines []LineInput) (*domain.Order, error) {
	customer, err := s.customers.GetByID(ctx, customerID)
	if err != nil {
		switch {
		case isNotFound(err):
			return nil, apperr.New(apperr.CodeCustomerNotFound, fmt.Sprintf("customer %s not found", customerID))
		case wasCancelled(err):
			return nil, cancelledErr(err)
		default:
			s.log.Error("resolve_customer", err, map[string]any{"customer_id": customerID.String()})
			return nil, apperr.Wrap(apperr.CodeUnexpected, "failed to resolve customer", err)
		}
	}

	// Checked before any per-product resolution; the aggregate
	// constructor enforces the same rule again.
	if len(lines) == 0 {
		return nil, apperr.New(apperr.CodeNoLineItems, "an order must contain at least 1 item")
	}

	built := make([]domain.OrderLine, 0, len(lines))
	for _, in := range lines {
		product, err := s.products.GetByID(ctx, in.ProductID)
		if err != nil {
			switch {
			case isNotFound(err):
				return nil, apperr.New(apperr.CodeProductNotFound, fmt.Sprintf("product %s not found", in.ProductID))
			case wasCancelled(err):
				return nil, cancelledErr(err)
			default:
				s.log.Error("resolve_product", err, map[string]any{"product_id": in.ProductID.String()})
				return nil, apperr.Wrap(apperr.CodeUnexpected, "failed to resolve product", err)
			}
		}

		line, err := domain.NewOrderLine(in.Quantity, product)
		if err != nil {
			return nil, apperr.Wrap(apperr.CodeValidation, err.Error(), err)
		}
		built = append(built, line)
	}

	order, err := domain.NewOrder(customer, built, s.clock.Now())
	if err != nil {
		if errors.Is(err, domain.ErrEmptyOrder) {
			return nil, apperr.Wrap(apperr.CodeNoLineItems, "an order must contain at least 1 item", err)
		}
		return nil, apperr.Wrap(apperr.CodeValidation, err.Error(), err)
	}

	if err := s.orders.Create(ctx, order); err != nil {
		// Once the commit has been issued the write may still land;
		// cancellation is only guaranteed side-effect free before it.
		if wasCancelled(err) {
			return nil, cancelledErr(err)
		}
		s.log.Error("persist_order", err, map[string]any{"order_id": order.ID.String()})
		return nil, apperr.Wrap(apperr.CodePersistence, "failed to store the order", err)
	}

	s.announce(order)

	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		switch {
		case isNotFound(err):
			return nil, apperr.New(apperr.CodeOrderNotFound, fmt.Sprintf("order %s not found", id))
		case wasCancelled(err):
			return nil, cancelledErr(err)
		default:
			s.log.Error("load_order", err, map[string]any{"order_id": id.String()})
			return nil, apperr.Wrap(apperr.CodeUnexpected, "failed to load the order", err)
		}
	}
	return order, nil
}

// announce publishes order.created best effort. The order is already
// committed, so a broker failure is logged and never surfaces.
func (s *OrderService) announce(order *domain.Order) {
	if s.publisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()
	if err := s.publisher.OrderCreated(ctx, order); err != nil {
		s.log.Error("publish_order_created", err, map[string]any{"order_id": order.ID.String()})
	}
}
