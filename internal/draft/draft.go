// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package draft persists in-progress wizard forms so a page reload
// restores exactly where the author left off. Drafts are a create-only
// convenience; editing an existing record bypasses them.
package draft

import (
	"context"
	"fmt"
	"time"

	"github.com/savannatrails/safari-go/internal/cache"
	"github.com/savannatrails/safari-go/internal/wizard"
)

// TTL is how long an untouched draft survives before it is purged.
const TTL = 7 * 24 * time.Hour

const keyPrefix = "draft:"

// Store saves and restores wizard forms keyed by kind and session token.
type Store struct {
	cache *cache.TypedCache[wizard.Form]
}

// NewStore creates a draft store on top of the given cache backend.
func NewStore(backend cache.Cache) *Store {
	return &Store{
		cache: cache.NewTypedCache[wizard.Form](backend, TTL),
	}
}

func key(kind, token string) string {
	return fmt.Sprintf("%s%s:%s", keyPrefix, kind, token)
}

// Save writes the current form state. Every field change while creating
// goes through here. Edit forms are never saved.
func (s *Store) Save(ctx context.Context, token string, form *wizard.Form) error {
	if form.IsEditing() {
		return nil
	}
	return s.cache.Set(ctx, key(form.Kind, token), form)
}

// Load restores a previously saved draft, or returns nil if none exists.
func (s *Store) Load(ctx context.Context, kind, token string) *wizard.Form {
	form, ok := s.cache.Get(ctx, key(kind, token))
	if !ok {
		return nil
	}
	return form
}

// Clear removes a draft. Called only after a successful creation or an
// explicit discard.
func (s *Store) Clear(ctx context.Context, kind, token string) error {
	return s.cache.Delete(ctx, key(kind, token))
}
