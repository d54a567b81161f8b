// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"time"

	"github.com/savannatrails/safari-go/internal/cache"
	"github.com/savannatrails/safari-go/internal/model"
	"github.com/savannatrails/safari-go/internal/store"
)

const catalogKeyPrefix = "catalog:"

// CatalogService serves tour listings through a cache so public pages
// fetch the list once and filter in memory.
type CatalogService struct {
	queries *store.Queries
	cache   *cache.TypedCache[[]model.TourPackage]
}

// NewCatalogService creates a cached catalog reader.
func NewCatalogService(queries *store.Queries, backend cache.Cache, ttl time.Duration) *CatalogService {
	return &CatalogService{
		queries: queries,
		cache:   cache.NewTypedCache[[]model.TourPackage](backend, ttl),
	}
}

// ListTours returns all tours of a kind, from cache when fresh.
func (s *CatalogService) ListTours(ctx context.Context, kind string) ([]model.TourPackage, error) {
	tours, err := s.cache.GetOrSet(ctx, catalogKeyPrefix+kind, func() (*[]model.TourPackage, error) {
		list, err := s.queries.ListTours(ctx, kind)
		if err != nil {
			return nil, err
		}
		return &list, nil
	})
	if err != nil {
		return nil, err
	}
	return *tours, nil
}

// Invalidate drops the cached listing for a kind. Called after every
// create, update or delete.
func (s *CatalogService) Invalidate(ctx context.Context, kind string) {
	_ = s.cache.Delete(ctx, catalogKeyPrefix+kind)
}
