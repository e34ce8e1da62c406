// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package repository defines store-facing interfaces for the four document
// collections. Implementations live in subpackages.
package repository

import (
	"context"

	"github.com/curioswitch/lutongbahay/server/internal/lutongdb"
)

// Recipes provides access to recipe documents.
type Recipes interface {
	// Create persists a new recipe with a server-assigned timestamp and
	// returns its ID.
	Create(ctx context.Context, recipe *lutongdb.Recipe) (string, error)

	// Get returns one recipe by ID, or errs.ErrNotFound.
	Get(ctx context.Context, id string) (*lutongdb.Recipe, error)

	// ReplaceOwned overwrites all fields of the recipe and stamps a fresh
	// timestamp, after verifying inside the same transaction that the stored
	// document exists and is owned by ownerID. Returns errs.ErrNotFound or
	// errs.ErrUnauthorized otherwise.
	ReplaceOwned(ctx context.Context, id string, ownerID string, recipe *lutongdb.Recipe) error

	// DeleteCascadeOwned deletes the recipe and every comment referencing it
	// in a single all-or-nothing transaction, after verifying ownership.
	// Returns the number of comments deleted.
	DeleteCascadeOwned(ctx context.Context, id string, ownerID string) (int, error)

	// ListByCategory returns all recipes whose category exactly equals the
	// given name. Order is store default.
	ListByCategory(ctx context.Context, category string) ([]lutongdb.Recipe, error)

	// ListRecent returns up to limit recipes ordered by creation time,
	// newest first.
	ListRecent(ctx context.Context, limit int) ([]lutongdb.Recipe, error)
}
