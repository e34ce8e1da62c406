// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package listrecipes

import (
	"context"
	"time"

	"github.com/curioswitch/lutongbahay/server/internal/service"
)

func NewHandler(recipes *service.Recipes) *Handler {
	return &Handler{recipes: recipes}
}

type Handler struct {
	recipes *service.Recipes
}

type Request struct {
	Category string `json:"category"`
}

type Recipe struct {
	ID                   string    `json:"id"`
	Title                string    `json:"title"`
	Category             string    `json:"category"`
	CreatedByDisplayName string    `json:"createdByName"`
	CreatedAt            time.Time `json:"createdAt"`
}

type Response struct {
	Recipes []Recipe `json:"recipes"`
}

// ListRecipes returns all recipes whose category exactly matches.
func (h *Handler) ListRecipes(ctx context.Context, req *Request) (*Response, error) {
	recipes, err := h.recipes.ListByCategory(ctx, req.Category)
	if err != nil {
		return nil, err
	}
	res := &Response{Recipes: make([]Recipe, len(recipes))}
	for i, r := range recipes {
		res.Recipes[i] = Recipe{
			ID:                   r.ID,
			Title:                r.Title,
			Category:             r.Category,
			CreatedByDisplayName: r.CreatedByDisplayName,
			CreatedAt:            r.CreatedAt,
		}
	}
	return res, nil
}
