// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/curioswitch/lutongbahay/server/internal/errs"
	"github.com/curioswitch/lutongbahay/server/internal/lutongdb"
	"github.com/curioswitch/lutongbahay/server/internal/repository"
)

// SuggestionSeed is the free-text input for a category suggestion.
type SuggestionSeed struct {
	// Name is the recipe or category name to normalize.
	Name string

	// Ingredients optionally give the model more context.
	Ingredients []string

	// Language is the human-readable target output language, e.g. "Tagalog".
	Language string
}

// Suggester produces a canonical category name from free text.
type Suggester interface {
	SuggestCategory(ctx context.Context, seed SuggestionSeed) (string, error)
}

// NewCategories constructs the category service.
func NewCategories(repo repository.Categories, suggester Suggester) *Categories {
	return &Categories{repo: repo, suggester: suggester}
}

// Categories implements category listing, unique insertion, and the
// suggestion-assisted add flow.
type Categories struct {
	repo      repository.Categories
	suggester Suggester
}

// List returns all categories, unordered.
func (s *Categories) List(ctx context.Context) ([]lutongdb.Category, error) {
	return s.repo.List(ctx)
}

// Add inserts a category with the exact given name. Names are unique;
// adding an existing name is a no-op that reports errs.ErrAlreadyExists.
func (s *Categories) Add(ctx context.Context, name string) (*lutongdb.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("service: empty category name: %w", errs.ErrInvalidArgument)
	}
	return s.repo.InsertUnique(ctx, name)
}

// Suggest asks the text-suggestion backend for a canonical category name.
// Advisory only: nothing is written, and the result is not checked against
// existing categories. The caller may edit it before calling Add.
func (s *Categories) Suggest(ctx context.Context, seed SuggestionSeed) (string, error) {
	seed.Name = strings.TrimSpace(seed.Name)
	if seed.Name == "" {
		return "", fmt.Errorf("service: empty suggestion seed: %w", errs.ErrInvalidArgument)
	}
	suggestion, err := s.suggester.SuggestCategory(ctx, seed)
	if err != nil {
		return "", fmt.Errorf("service: suggesting category: %w", err)
	}
	return strings.TrimSpace(suggestion), nil
}
