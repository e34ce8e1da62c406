// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package repository

import (
	"context"

	"github.com/curioswitch/lutongbahay/server/internal/lutongdb"
)

// Comments provides access to comment documents. Deleting comments is not
// exposed here; comments are only removed by Recipes.DeleteCascadeOwned.
type Comments interface {
	// Add persists a new comment with a server-assigned timestamp and
	// returns its ID.
	Add(ctx context.Context, comment *lutongdb.Comment) (string, error)

	// ListByRecipe returns all comments for the recipe. The store is not
	// required to order them; callers sort newest first.
	ListByRecipe(ctx context.Context, recipeID string) ([]lutongdb.Comment, error)
}
