// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package service implements the data-access operations over the
// repositories: field validation, role and ownership checks, and the cascade
// rules the document store does not enforce itself.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/curioswitch/lutongbahay/server/internal/auth"
	"github.com/curioswitch/lutongbahay/server/internal/errs"
	"github.com/curioswitch/lutongbahay/server/internal/lutongdb"
	"github.com/curioswitch/lutongbahay/server/internal/repository"
)

// DefaultRecentLimit is the landing page's recent-recipes count.
const DefaultRecentLimit = 5

// maxRecentLimit bounds a caller-supplied recent-recipes count.
const maxRecentLimit = 50

// RecipeInput carries the editable fields of a recipe.
type RecipeInput struct {
	Title       string
	Category    string
	Ingredients []string
	Steps       []string
}

// NewRecipes constructs the recipe service.
func NewRecipes(repo repository.Recipes) *Recipes {
	return &Recipes{repo: repo}
}

// Recipes implements recipe CRUD with ownership enforcement.
type Recipes struct {
	repo repository.Recipes
}

// Create publishes a new recipe authored by the principal. Only creators may
// publish; the author ID and display name are snapshotted at write time.
func (s *Recipes) Create(ctx context.Context, p auth.Principal, in RecipeInput) (*lutongdb.Recipe, error) {
	if !p.CanAuthorRecipes() {
		return nil, fmt.Errorf("service: only creators may add recipes: %w", errs.ErrUnauthorized)
	}
	recipe, err := recipeFromInput(in)
	if err != nil {
		return nil, err
	}
	recipe.CreatedByUserID = p.UserID
	recipe.CreatedByDisplayName = p.DisplayName

	id, err := s.repo.Create(ctx, recipe)
	if err != nil {
		return nil, err
	}
	recipe.ID = id
	return recipe, nil
}

// Update replaces all editable fields of the recipe. The stored document's
// owner must match the principal; the check runs against the store, not the
// caller's copy. The creation timestamp resets to now, matching the original
// contract that an edited recipe counts as recent.
func (s *Recipes) Update(ctx context.Context, p auth.Principal, id string, in RecipeInput) error {
	if id == "" {
		return fmt.Errorf("service: empty recipe id: %w", errs.ErrInvalidArgument)
	}
	recipe, err := recipeFromInput(in)
	if err != nil {
		return err
	}
	recipe.CreatedByUserID = p.UserID
	recipe.CreatedByDisplayName = p.DisplayName
	return s.repo.ReplaceOwned(ctx, id, p.UserID, recipe)
}

// Delete removes the recipe and all of its comments atomically. Only the
// owner may delete. Returns the number of comments removed.
func (s *Recipes) Delete(ctx context.Context, p auth.Principal, id string) (int, error) {
	if id == "" {
		return 0, fmt.Errorf("service: empty recipe id: %w", errs.ErrInvalidArgument)
	}
	return s.repo.DeleteCascadeOwned(ctx, id, p.UserID)
}

// Get returns one recipe by ID.
func (s *Recipes) Get(ctx context.Context, id string) (*lutongdb.Recipe, error) {
	if id == "" {
		return nil, fmt.Errorf("service: empty recipe id: %w", errs.ErrInvalidArgument)
	}
	return s.repo.Get(ctx, id)
}

// ListByCategory returns all recipes in the exactly-named category.
func (s *Recipes) ListByCategory(ctx context.Context, category string) ([]lutongdb.Recipe, error) {
	if category == "" {
		return nil, fmt.Errorf("service: empty category: %w", errs.ErrInvalidArgument)
	}
	return s.repo.ListByCategory(ctx, category)
}

// ListRecent returns the most recently created recipes, newest first.
// A non-positive limit falls back to DefaultRecentLimit.
func (s *Recipes) ListRecent(ctx context.Context, limit int) ([]lutongdb.Recipe, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}
	return s.repo.ListRecent(ctx, limit)
}

func recipeFromInput(in RecipeInput) (*lutongdb.Recipe, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, fmt.Errorf("service: empty title: %w", errs.ErrInvalidArgument)
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		return nil, fmt.Errorf("service: empty category: %w", errs.ErrInvalidArgument)
	}
	ingredients := trimNonEmpty(in.Ingredients)
	if len(ingredients) == 0 {
		return nil, fmt.Errorf("service: recipe needs at least one ingredient: %w", errs.ErrInvalidArgument)
	}
	steps := trimNonEmpty(in.Steps)
	if len(steps) == 0 {
		return nil, fmt.Errorf("service: recipe needs at least one step: %w", errs.ErrInvalidArgument)
	}
	return &lutongdb.Recipe{
		Title:       title,
		Category:    category,
		Ingredients: ingredients,
		Steps:       steps,
	}, nil
}

// trimNonEmpty drops blank entries while preserving order.
func trimNonEmpty(values []string) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		if v := strings.TrimSpace(v); v != "" {
			result = append(result, v)
		}
	}
	return result
}
