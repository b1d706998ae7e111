package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"bugstore/internal/apperr"
	"bugstore/internal/domain"
	"bugstore/internal/logger"
	"bugstore/internal/repository"

	"github.com/google/uuid"
)

type CreateCustomerInput struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	BirthDate time.Time `json:"birth_date"`
}

type CustomerServiceInterface interface {
	Create(ctx context.Context, in CreateCustomerInput) (*domain.Customer, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	List(ctx context.Context, page, perPage int) ([]domain.Customer, int, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.CustomerPatch) (*domain.Customer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CustomerService struct {
	repo repository.CustomerRepositoryInterface
	log  *logger.Logger
}

func NewCustomerService(repo repository.CustomerRepositoryInterface, log *logger.Logger) CustomerServiceInterface {
	return &CustomerService{repo: repo, log: log}
}

// Create registers a customer. Email and phone are unique across the
// store; a hit on either is a conflict, not a validation failure.
func (s *CustomerService) Create(ctx context.Context, in CreateCustomerInput) (*domain.Customer, error) {
	for _, probe := range []struct {
		lookup func() (*domain.Customer, error)
		field  string
	}{
		{func() (*domain.Customer, error) { return s.repo.GetByEmail(ctx, strings.TrimSpace(in.Email)) }, "email"},
		{func() (*domain.Customer, error) { return s.repo.GetByPhone(ctx, strings.TrimSpace(in.Phone)) }, "phone"},
	} {
		existing, err := probe.lookup()
		if err != nil && !isNotFound(err) {
			if wasCancelled(err) {
				return nil, cancelledErr(err)
			}
			s.log.Error("check_customer_uniqueness", err, nil)
			return nil, apperr.Wrap(apperr.CodeUnexpected, "failed to check existing customers", err)
		}
		if existing != nil {
			return nil, apperr.New(apperr.CodeConflict, fmt.Sprintf("a customer with this %s already exists", probe.field))
		}
	}

	customer, err := domain.NewCustomer(in.Name, in.Email, in.Phone, in.BirthDate)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeValidation, err.Error(), err)
	}

	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, s.storeFailure("create_customer", err)
	}
	return customer, nil
}

func (s *CustomerService) Get(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	customer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		switch {
		case isNotFound(err):
			return nil, apperr.New(apperr.CodeCustomerNotFound, fmt.Sprintf("customer %s not found", id))
		case wasCancelled(err):
			return nil, cancelledErr(err)
		default:
			s.log.Error("load_customer", err, map[string]any{"customer_id": id.String()})
			return nil, apperr.Wrap(apperr.CodeUnexpected, "failed to load the customer", err)
		}
	}
	return customer, nil
}

func (s *CustomerService) List(ctx context.Context, page, perPage int) ([]domain.Customer, int, error) {
	if page < 1 || perPage <= 0 {
		return nil, 0, apperr.New(apperr.CodeValidation, "invalid pagination parameters")
	}
	customers, total, err := s.repo.List(ctx, perPage, (page-1)*perPage)
	if err != nil {
		if wasCancelled(err) {
			return nil, 0, cancelledErr(err)
		}
		s.log.Error("list_customers", err, nil)
		return nil, 0, apperr.Wrap(apperr.CodeUnexpected, "failed to list customers", err)
	}
	return customers, total, nil
}

// Update applies a partial update: only the patch's non-nil fields
// overwrite stored values.
func (s *CustomerService) Update(ctx context.Context, id uuid.UUID, patch domain.CustomerPatch) (*domain.Customer, error) {
	customer, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(customer)
	if strings.TrimSpace(customer.Name) == "" ||
		strings.TrimSpace(customer.Email) == "" ||
		strings.TrimSpace(customer.Phone) == "" {
		return nil, apperr.New(apperr.CodeValidation, "name, email and phone must not be blank")
	}

	if err := s.repo.Update(ctx, customer); err != nil {
		return nil, s.storeFailure("update_customer", err)
	}
	return customer, nil
}

func (s *CustomerService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		switch {
		case isNotFound(err):
			return apperr.New(apperr.CodeCustomerNotFound, fmt.Sprintf("customer %s not found", id))
		case wasCancelled(err):
			return cancelledErr(err)
		default:
			s.log.Error("delete_customer", err, map[string]any{"customer_id": id.String()})
			return apperr.Wrap(apperr.CodePersistence, "failed to delete the customer", err)
		}
	}
	return nil
}

func (s *CustomerService) storeFailure(action string, err error) error {
	switch {
	case isConflict(err):
		return apperr.Wrap(apperr.CodeConflict, "a customer with this email or phone already exists", err)
	case wasCancelled(err):
		return cancelledErr(err)
	default:
		s.log.Error(action, err, nil)
		return apperr.Wrap(apperr.CodePersistence, "failed to store the customer", err)
	}
}
