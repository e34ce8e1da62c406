// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package getrecipe

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/curioswitch/lutongbahay/server/internal/lutongdb"
	"github.com/curioswitch/lutongbahay/server/internal/service"
)

func NewHandler(recipes *service.Recipes, comments *service.Comments) *Handler {
	return &Handler{
		recipes:  recipes,
		comments: comments,
	}
}

type Handler struct {
	recipes  *service.Recipes
	comments *service.Comments
}

type Request struct {
	RecipeID string `json:"recipeId"`
}

type Recipe struct {
	ID                   string    `json:"id"`
	Title                string    `json:"title"`
	Category             string    `json:"category"`
	Ingredients          []string  `json:"ingredients"`
	Steps                []string  `json:"steps"`
	CreatedByUserID      string    `json:"createdBy"`
	CreatedByDisplayName string    `json:"createdByName"`
	CreatedAt            time.Time `json:"createdAt"`
}

type Comment struct {
	ID              string    `json:"id"`
	RecipeID        string    `json:"recipeId"`
	UserID          string    `json:"userId"`
	UserDisplayName string    `json:"userName"`
	Text            string    `json:"text"`
	CreatedAt       time.Time `json:"createdAt"`
}

type Response struct {
	Recipe   Recipe    `json:"recipe"`
	Comments []Comment `json:"comments"`
}

// GetRecipe returns one recipe with its comments, newest comment first.
func (h *Handler) GetRecipe(ctx context.Context, req *Request) (*Response, error) {
	var (
		recipe   *lutongdb.Recipe
		comments []lutongdb.Comment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		recipe, err = h.recipes.Get(gctx, req.RecipeID)
		return err
	})
	g.Go(func() error {
		var err error
		comments, err = h.comments.ListByRecipe(gctx, req.RecipeID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &Response{
		Recipe: Recipe{
			ID:                   recipe.ID,
			Title:                recipe.Title,
			Category:             recipe.Category,
			Ingredients:          recipe.Ingredients,
			Steps:                recipe.Steps,
			CreatedByUserID:      recipe.CreatedByUserID,
			CreatedByDisplayName: recipe.CreatedByDisplayName,
			CreatedAt:            recipe.CreatedAt,
		},
		Comments: make([]Comment, len(comments)),
	}
	for i, c := range comments {
		res.Comments[i] = Comment{
			ID:              c.ID,
			RecipeID:        c.RecipeID,
			UserID:          c.UserID,
			UserDisplayName: c.UserDisplayName,
			Text:            c.Text,
			CreatedAt:       c.CreatedAt,
		}
	}
	return res, nil
}
