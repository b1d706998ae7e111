package service

import (
	"context"
	"errors"

	"bugstore/internal/apperr"
	"bugstore/internal/domain"
	"bugstore/internal/logger"
	"bugstore/internal/repository"
)

// OrderEventPublisher announces committed orders. A nil publisher
// disables announcements.
type OrderEventPublisher interface {
	OrderCreated(ctx context.Context, o *domain.Order) error
}

type Service struct {
	CustomerService CustomerServiceInterface
	ProductService  ProductServiceInterface
	OrderService    OrderServiceInterface
}

func New(repo *repository.Repository, clock domain.Clock, publisher OrderEventPublisher, log *logger.Logger) *Service {
	return &Service{
		CustomerService: NewCustomerService(repo.CustomerRepo, log.With("customer-service")),
		ProductService:  NewProductService(repo.ProductRepo, log.With("product-service")),
		OrderService: NewOrderService(repo.OrderRepo, repo.CustomerRepo, repo.ProductRepo,
			clock, publisher, log.With("order-service")),
	}
}

// wasCancelled reports whether err stems from the caller withdrawing
// interest rather than from the operation itself.
func wasCancelled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func cancelledErr(err error) error {
	return apperr.Wrap(apperr.CodeCancelled, "operation cancelled", err)
}

func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}

func isConflict(err error) bool {
	return errors.Is(err, repository.ErrConflict)
}
