package service

import (
	"context"
	"testing"

	"bugstore/internal/apperr"
	"bugstore/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductCreate(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo, testLogger())

	p, err := svc.Create(context.Background(), CreateProductInput{
		Title:       "Keyboard",
		Description: "Mechanical",
		Slug:        "keyboard",
		Price:       149.90,
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, p.ID)
	assert.Len(t, repo.products, 1)
}

func TestProductCreate_SlugTaken(t *testing.T) {
	existing := makeProduct(t, "keyboard", 100)
	svc := NewProductService(newFakeProductRepo(existing), testLogger())

	_, err := svc.Create(context.Background(), CreateProductInput{
		Title:       "Another Keyboard",
		Description: "Desc",
		Slug:        "keyboard",
		Price:       99,
	})
	require.Error(t, err)
	assert.Equal(t, apperr.CodeConflict, apperr.CodeOf(err))
	assert.Equal(t, apperr.StatusConflict, apperr.StatusOf(err))
}

func TestProductCreate_InvalidPrice(t *testing.T) {
	svc := NewProductService(newFakeProductRepo(), testLogger())

	_, err := svc.Create(context.Background(), CreateProductInput{
		Title:       "Keyboard",
		Description: "Desc",
		Slug:        "keyboard",
		Price:       0,
	})
	require.Error(t, err)
	assert.Equal(t, apperr.CodeValidation, apperr.CodeOf(err))
}

func TestProductGetBySlug(t *testing.T) {
	existing := makeProduct(t, "keyboard", 100)
	svc := NewProductService(newFakeProductRepo(existing), testLogger())

	p, err := svc.GetBySlug(context.Background(), "keyboard")
	require.NoError(t, err)
	assert.Equal(t, existing.ID, p.ID)

	_, err = svc.GetBySlug(context.Background(), "missing")
	assert.Equal(t, apperr.CodeProductNotFound, apperr.CodeOf(err))
}

func TestProductUpdate_PartialPatch(t *testing.T) {
	existing := makeProduct(t, "keyboard", 100)
	svc := NewProductService(newFakeProductRepo(existing), testLogger())

	price := 79.90
	updated, err := svc.Update(context.Background(), existing.ID, domain.ProductPatch{Price: &price})
	require.NoError(t, err)

	assert.InDelta(t, 79.90, updated.Price, 1e-9)
	assert.Equal(t, "keyboard", updated.Slug, "unpatched fields are retained")
}

func TestProductUpdate_InvalidPrice(t *testing.T) {
	existing := makeProduct(t, "keyboard", 100)
	svc := NewProductService(newFakeProductRepo(existing), testLogger())

	price := -5.0
	_, err := svc.Update(context.Background(), existing.ID, domain.ProductPatch{Price: &price})
	require.Error(t, err)
	assert.Equal(t, apperr.CodeValidation, apperr.CodeOf(err))
}

func TestProductDelete_NotFound(t *testing.T) {
	svc := NewProductService(newFakeProductRepo(), testLogger())

	err := svc.Delete(context.Background(), uuid.New())
	assert.Equal(t, apperr.CodeProductNotFound, apperr.CodeOf(err))
}
