// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package firestoredb

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/curioswitch/lutongbahay/server/internal/lutongdb"
)

// NewComments returns a comment repository backed by Firestore.
func NewComments(client *firestore.Client) *Comments {
	return &Comments{client: client}
}

// Comments implements repository.Comments on Firestore.
type Comments struct {
	client *firestore.Client
}

func (c *Comments) Add(ctx context.Context, comment *lutongdb.Comment) (string, error) {
	doc := c.client.Collection(lutongdb.CollectionComments).NewDoc()
	if _, err := doc.Create(ctx, comment); err != nil {
		return "", fmt.Errorf("firestoredb: creating comment: %w", err)
	}
	return doc.ID, nil
}

// ListByRecipe queries by equality only. An ordered query here would need a
// composite index on (recipeId, petsaGawa); the service layer sorts instead.
func (c *Comments) ListByRecipe(ctx context.Context, recipeID string) ([]lutongdb.Comment, error) {
	iter := c.client.Collection(lutongdb.CollectionComments).
		Where("recipeId", "==", recipeID).
		Documents(ctx)
	defer iter.Stop()

	var comments []lutongdb.Comment
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			return comments, nil
		}
		if err != nil {
			return nil, fmt.Errorf("firestoredb: listing comments: %w", err)
		}
		var comment lutongdb.Comment
		if err := snap.DataTo(&comment); err != nil {
			return nil, fmt.Errorf("firestoredb: unmarshalling comment: %w", err)
		}
		comment.ID = snap.Ref.ID
		comments = append(comments, comment)
	}
}
