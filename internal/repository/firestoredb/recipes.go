// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package firestoredb implements the repository interfaces on Firestore.
//
// The check-then-act windows of the original design (category uniqueness,
// ownership before mutate) are closed here with Firestore transactions.
package firestoredb

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"

	"github.com/curioswitch/lutongbahay/server/internal/errs"
	"github.com/curioswitch/lutongbahay/server/internal/lutongdb"
)

// NewRecipes returns a recipe repository backed by Firestore.
func NewRecipes(client *firestore.Client) *Recipes {
	return &Recipes{client: client}
}

// Recipes implements repository.Recipes on Firestore.
type Recipes struct {
	client *firestore.Client
}

func (r *Recipes) Create(ctx context.Context, recipe *lutongdb.Recipe) (string, error) {
	doc := r.client.Collection(lutongdb.CollectionRecipes).NewDoc()
	if _, err := doc.Create(ctx, recipe); err != nil {
		return "", fmt.Errorf("firestoredb: creating recipe: %w", err)
	}
	return doc.ID, nil
}

func (r *Recipes) Get(ctx context.Context, id string) (*lutongdb.Recipe, error) {
	snap, err := r.client.Collection(lutongdb.CollectionRecipes).Doc(id).Get(ctx)
	if snap != nil && !snap.Exists() {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("firestoredb: getting recipe: %w", err)
	}
	return recipeFromSnap(snap)
}

func (r *Recipes) ReplaceOwned(ctx context.Context, id string, ownerID string, recipe *lutongdb.Recipe) error {
	ref := r.client.Collection(lutongdb.CollectionRecipes).Doc(id)
	err := r.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if snap != nil && !snap.Exists() {
			return errs.ErrNotFound
		}
		if err != nil {
			return err
		}
		stored, err := recipeFromSnap(snap)
		if err != nil {
			return err
		}
		if stored.CreatedByUserID != ownerID {
			return errs.ErrUnauthorized
		}
		// Full overwrite. The zero CreatedAt resolves to a fresh server
		// timestamp through the serverTimestamp tag.
		return tx.Set(ref, recipe)
	})
	if err != nil {
		return wrapTxErr("replacing recipe", err)
	}
	return nil
}

func (r *Recipes) DeleteCascadeOwned(ctx context.Context, id string, ownerID string) (int, error) {
	ref := r.client.Collection(lutongdb.CollectionRecipes).Doc(id)
	deleted := 0
	err := r.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if snap != nil && !snap.Exists() {
			return errs.ErrNotFound
		}
		if err != nil {
			return err
		}
		stored, err := recipeFromSnap(snap)
		if err != nil {
			return err
		}
		if stored.CreatedByUserID != ownerID {
			return errs.ErrUnauthorized
		}

		comments, err := tx.Documents(
			r.client.Collection(lutongdb.CollectionComments).Where("recipeId", "==", id),
		).GetAll()
		if err != nil {
			return err
		}
		for _, c := range comments {
			if err := tx.Delete(c.Ref); err != nil {
				return err
			}
		}
		if err := tx.Delete(ref); err != nil {
			return err
		}
		deleted = len(comments)
		return nil
	})
	if err != nil {
		return 0, wrapTxErr("deleting recipe", err)
	}
	return deleted, nil
}

func (r *Recipes) ListByCategory(ctx context.Context, category string) ([]lutongdb.Recipe, error) {
	docs, err := r.client.Collection(lutongdb.CollectionRecipes).
		Where("kategorya", "==", category).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("firestoredb: listing recipes by category: %w", err)
	}
	return recipesFromSnaps(docs)
}

func (r *Recipes) ListRecent(ctx context.Context, limit int) ([]lutongdb.Recipe, error) {
	docs, err := r.client.Collection(lutongdb.CollectionRecipes).
		OrderBy("petsaGawa", firestore.Desc).
		Limit(limit).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("firestoredb: listing recent recipes: %w", err)
	}
	return recipesFromSnaps(docs)
}

func recipeFromSnap(snap *firestore.DocumentSnapshot) (*lutongdb.Recipe, error) {
	var recipe lutongdb.Recipe
	if err := snap.DataTo(&recipe); err != nil {
		return nil, fmt.Errorf("firestoredb: unmarshalling recipe: %w", err)
	}
	recipe.ID = snap.Ref.ID
	return &recipe, nil
}

func recipesFromSnaps(snaps []*firestore.DocumentSnapshot) ([]lutongdb.Recipe, error) {
	recipes := make([]lutongdb.Recipe, 0, len(snaps))
	for _, snap := range snaps {
		recipe, err := recipeFromSnap(snap)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, *recipe)
	}
	return recipes, nil
}
