// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package repository

import (
	"context"

	"github.com/curioswitch/lutongbahay/server/internal/lutongdb"
)

// Categories provides access to category documents.
type Categories interface {
	// List returns all categories, unordered.
	List(ctx context.Context) ([]lutongdb.Category, error)

	// InsertUnique inserts a category if no category with the exact same
	// name exists. The existence check and the insert run in one
	// transaction. Returns errs.ErrAlreadyExists on collision.
	InsertUnique(ctx context.Context, name string) (*lutongdb.Category, error)
}
