// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package deleterecipe

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
	RecipeID string `json:"recipeId"`
}

type Response struct {
	DeletedComments int `json:"deletedComments"`
}

// DeleteRecipe removes the caller's own recipe together with all of its
// comments, atomically.
func (h *Handler) DeleteRecipe(ctx context.Context, req *Request) (*Response, error) {
	principal, ok := auth.FromContext(ctx)
	if !ok {
		return nil, fmt.Errorf("deleterecipe: sign in to delete recipes: %w", errs.ErrUnauthorized)
	}
	deleted, err := h.recipes.Delete(ctx, principal, req.RecipeID)
	if err != nil {
		return nil, err
	}
	return &Response{DeletedComments: deleted}, nil
}
