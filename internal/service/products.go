package service

import (
	"context"
	"fmt"
	"strings"

	"bugstore/internal/apperr"
	"bugstore/internal/domain"
	"bugstore/internal/logger"
	"bugstore/internal/repository"

	"github.com/google/uuid"
)

type CreateProductInput struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Slug        string  `json:"slug"`
	Price       float64 `json:"price"`
}

type ProductServiceInterface interface {
	Create(ctx context.Context, in CreateProductInput) (*domain.Product, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Product, error)
	List(ctx context.Context, page, perPage int) ([]domain.Product, int, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ProductService struct {
	repo repository.ProductRepositoryInterface
	log  *logger.Logger
}

func NewProductService(repo repository.ProductRepositoryInterface, log *logger.Logger) ProductServiceInterface {
	return &ProductService{repo: repo, log: log}
}

// Create adds a catalog entry. The slug is the stable external
// reference, so a taken slug is a conflict.
func (s *ProductService) Create(ctx context.Context, in CreateProductInput) (*domain.Product, error) {
	existing, err := s.repo.GetBySlug(ctx, strings.TrimSpace(in.Slug))
	if err != nil && !isNotFound(err) {
		if wasCancelled(err) {
			return nil, cancelledErr(err)
		}
		s.log.Error("check_product_slug", err, map[string]any{"slug": in.Slug})
		return nil, apperr.Wrap(apperr.CodeUnexpected, "failed to check existing products", err)
	}
	if existing != nil {
		return nil, apperr.New(apperr.CodeConflict, fmt.Sprintf("slug %q is already in use", existing.Slug))
	}

	product, err := domain.NewProduct(in.Title, in.Description, in.Slug, in.Price)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeValidation, err.Error(), err)
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, s.storeFailure("create_product", err)
	}
	return product, nil
}

func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.lookupFailure(err, fmt.Sprintf("product %s not found", id))
	}
	return product, nil
}

func (s *ProductService) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	product, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, s.lookupFailure(err, fmt.Sprintf("product %q not found", slug))
	}
	return product, nil
}

func (s *ProductService) List(ctx context.Context, page, perPage int) ([]domain.Product, int, error) {
	if page < 1 || perPage <= 0 {
		return nil, 0, apperr.New(apperr.CodeValidation, "invalid pagination parameters")
	}
	products, total, err := s.repo.List(ctx, perPage, (page-1)*perPage)
	if err != nil {
		if wasCancelled(err) {
			return nil, 0, cancelledErr(err)
		}
		s.log.Error("list_products", err, nil)
		return nil, 0, apperr.Wrap(apperr.CodeUnexpected, "failed to list products", err)
	}
	return products, total, nil
}

func (s *ProductService) Update(ctx context.Context, id uuid.UUID, patch domain.ProductPatch) (*domain.Product, error) {
	product, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(product)
	if strings.TrimSpace(product.Title) == "" || strings.TrimSpace(product.Slug) == "" {
		return nil, apperr.New(apperr.CodeValidation, "title and slug must not be blank")
	}
	if product.Price <= 0 {
		return nil, apperr.New(apperr.CodeValidation, "price must be greater than zero")
	}

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, s.storeFailure("update_product", err)
	}
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		switch {
		case isNotFound(err):
			return apperr.New(apperr.CodeProductNotFound, fmt.Sprintf("product %s not found", id))
		case wasCancelled(err):
			return cancelledErr(err)
		default:
			s.log.Error("delete_product", err, map[string]any{"product_id": id.String()})
			return apperr.Wrap(apperr.CodePersistence, "failed to delete the product", err)
		}
	}
	return nil
}

func (s *ProductService) lookupFailure(err error, notFoundMsg string) error {
	switch {
	case isNotFound(err):
		return apperr.New(apperr.CodeProductNotFound, notFoundMsg)
	case wasCancelled(err):
		return cancelledErr(err)
	default:
		s.log.Error("load_product", err, nil)
		return apperr.Wrap(apperr.CodeUnexpected, "failed to load the product", err)
	}
}

func (s *ProductService) storeFailure(action string, err error) error {
	switch {
	case isConflict(err):
		return apperr.Wrap(apperr.CodeConflict, "a product with this slug already exists", err)
	case wasCancelled(err):
		return cancelledErr(err)
	default:
		s.log.Error(action, err, nil)
		return apperr.Wrap(apperr.CodePersistence, "failed to store the product", err)
	}
}
