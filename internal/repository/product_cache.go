package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"bugstore/internal/connections/rediscache"
	"bugstore/internal/domain"
	"bugstore/internal/logger"

	"github.com/google/uuid"
)

// CachedProductRepository is a read-through cache in front of a product
// store. Cache failures are soft: the lookup falls through to the inner
// store and the incident is logged.
type CachedProductRepository struct {
	inner ProductRepositoryInterface
	cache rediscache.Cache
	ttl   time.Duration
	log   *logger.Logger
}

func NewCachedProductRepository(inner ProductRepositoryInterface, cache rediscache.Cache, ttl time.Duration, log *logger.Logger) ProductRepositoryInterface {
	return &CachedProductRepository{inner: inner, cache: cache, ttl: ttl, log: log}
}

func idKey(id uuid.UUID) string  { return "product:id:" + id.String() }
func slugKey(slug string) string { return "product:slug:" + slug }

func (r *CachedProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	if p, ok := r.lookup(ctx, idKey(id)); ok {
		return p, nil
	}
	p, err := r.inner.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.store(ctx, p)
	return p, nil
}

func (r *CachedProductRepository) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	if p, ok := r.lookup(ctx, slugKey(slug)); ok {
		return p, nil
	}
	p, err := r.inner.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	r.store(ctx, p)
	return p, nil
}

func (r *CachedProductRepository) Create(ctx context.Context, p *domain.Product) error {
	return r.inner.Create(ctx, p)
}

func (r *CachedProductRepository) List(ctx context.Context, limit, offset int) ([]domain.Product, int, error) {
	return r.inner.List(ctx, limit, offset)
}

func (r *CachedProductRepository) Update(ctx context.Context, p *domain.Product) error {
	// Fetch first: a slug rename must evict the old slug key too, or
	// GetBySlug keeps serving the pre-rename product until the TTL runs out.
	prior, err := r.inner.GetByID(ctx, p.ID)
	if err != nil {
		return err
	}
	if err := r.inner.Update(ctx, p); err != nil {
		return err
	}
	r.evict(ctx, prior)
	r.evict(ctx, p)
	return nil
}

func (r *CachedProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Fetch first so the slug key can be evicted alongside the id key.
	p, err := r.inner.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := r.inner.Delete(ctx, id); err != nil {
		return err
	}
	r.evict(ctx, p)
	return nil
}

func (r *CachedProductRepository) lookup(ctx context.Context, key string) (*domain.Product, bool) {
	raw, err := r.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, rediscache.ErrCacheMiss) {
			r.log.Error("product_cache_get", err, map[string]any{"key": key})
		}
		return nil, false
	}
	var p domain.Product
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		r.log.Error("product_cache_decode", err, map[string]any{"key": key})
		return nil, false
	}
	return &p, true
}

func (r *CachedProductRepository) store(ctx context.Context, p *domain.Product) {
	raw, err := json.Marshal(p)
	if err != nil {
		return
	}
	for _, key := range []string{idKey(p.ID), slugKey(p.Slug)} {
		if err := r.cache.Set(ctx, key, string(raw), r.ttl); err != nil {
			r.log.Error("product_cache_set", err, map[string]any{"key": key})
		}
	}
}

func (r *CachedProductRepository) evict(ctx context.Context, p *domain.Product) {
	if err := r.cache.Del(ctx, idKey(p.ID), slugKey(p.Slug)); err != nil {
		r.log.Error("product_cache_del", err, map[string]any{"product_id": p.ID.String()})
	}
}
