// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package repository

import (
	"context"

	"github.com/curioswitch/lutongbahay/server/internal/lutongdb"
)

// Users provides access to user profile documents, keyed by the identity
// provider's subject ID. Profiles are never deleted.
type Users interface {
	// Get returns the profile for the user, or errs.ErrNotFound.
	Get(ctx context.Context, id string) (*lutongdb.UserProfile, error)

	// Create writes a new profile. Returns errs.ErrAlreadyExists if a
	// profile for the ID already exists.
	Create(ctx context.Context, profile *lutongdb.UserProfile) error

	// Ensure upserts the profile with merge-on-conflict semantics: display
	// name and email are always written, while an existing role is preserved
	// unless overwriteRole is set. Missing profiles are created as given.
	Ensure(ctx context.Context, profile *lutongdb.UserProfile, overwriteRole bool) error
}
