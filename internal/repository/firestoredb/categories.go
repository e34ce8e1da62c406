// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package firestoredb

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"

	"github.com/curioswitch/lutongbahay/server/internal/errs"
	"github.com/curioswitch/lutongbahay/server/internal/lutongdb"
)

// NewCategories returns a category repository backed by Firestore.
func NewCategories(client *firestore.Client) *Categories {
	return &Categories{client: client}
}

// Categories implements repository.Categories on Firestore.
type Categories struct {
	client *firestore.Client
}

func (c *Categories) List(ctx context.Context) ([]lutongdb.Category, error) {
	docs, err := c.client.Collection(lutongdb.CollectionCategories).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("firestoredb: listing categories: %w", err)
	}
	categories := make([]lutongdb.Category, 0, len(docs))
	for _, snap := range docs {
		var category lutongdb.Category
		if err := snap.DataTo(&category); err != nil {
			return nil, fmt.Errorf("firestoredb: unmarshalling category: %w", err)
		}
		category.ID = snap.Ref.ID
		categories = append(categories, category)
	}
	return categories, nil
}

func (c *Categories) InsertUnique(ctx context.Context, name string) (*lutongdb.Category, error) {
	var category lutongdb.Category
	err := c.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		existing, err := tx.Documents(
			c.client.Collection(lutongdb.CollectionCategories).Where("name", "==", name).Limit(1),
		).GetAll()
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			return errs.ErrAlreadyExists
		}
		ref := c.client.Collection(lutongdb.CollectionCategories).NewDoc()
		if err := tx.Create(ref, lutongdb.Category{Name: name}); err != nil {
			return err
		}
		category = lutongdb.Category{ID: ref.ID, Name: name}
		return nil
	})
	if err != nil {
		return nil, wrapTxErr("inserting category", err)
	}
	return &category, nil
}
