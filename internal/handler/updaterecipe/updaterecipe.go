// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package updaterecipe

import (
	"context"
	"fmt"

	"github.com/curioswitch/lutongbahay/server/internal/auth"
	"github.com/curioswitch/lutongbahay/server/internal/errs"
	"github.com/curioswitch/lutongbahay/server/internal/service"
)

func NewHandler(recipes *service.Recipes) *Handler {
	return &Handler{recipes: recipes}
}

type Handler struct {
	recipes *service.Recipes
}

type Request struct {
	RecipeID    string   `json:"recipeId"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
}

type Response struct{}

// UpdateRecipe replaces all editable fields of the caller's own recipe.
func (h *Handler) UpdateRecipe(ctx context.Context, req *Request) (*Response, error) {
	principal, ok := auth.FromContext(ctx)
	if !ok {
		return nil, fmt.Errorf("updaterecipe: sign in to edit recipes: %w", errs.ErrUnauthorized)
	}
	if err := h.recipes.Update(ctx, principal, req.RecipeID, service.RecipeInput{
		Title:       req.Title,
		Category:    req.Category,
		Ingredients: req.Ingredients,
		Steps:       req.Steps,
	}); err != nil {
		return nil, err
	}
	return &Response{}, nil
}
