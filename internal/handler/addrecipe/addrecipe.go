// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package addrecipe

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
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
}

type Response struct {
	RecipeID string `json:"recipeId"`
}

// AddRecipe publishes a recipe authored by the signed-in creator.
func (h *Handler) AddRecipe(ctx context.Context, req *Request) (*Response, error) {
	principal, ok := auth.FromContext(ctx)
	if !ok {
		return nil, fmt.Errorf("addrecipe: sign in to add recipes: %w", errs.ErrUnauthorized)
	}
	recipe, err := h.recipes.Create(ctx, principal, service.RecipeInput{
		Title:       req.Title,
		Category:    req.Category,
		Ingredients: req.Ingredients,
		Steps:       req.Steps,
	})
	if err != nil {
		return nil, err
	}
	return &Response{RecipeID: recipe.ID}, nil
}
