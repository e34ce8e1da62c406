// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package frontpage

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/curioswitch/lutongbahay/server/internal/lutongdb"
	"github.com/curioswitch/lutongbahay/server/internal/service"
)

func NewHandler(categories *service.Categories, recipes *service.Recipes) *Handler {
	return &Handler{
		categories: categories,
		recipes:    recipes,
	}
}

type Handler struct {
	categories *service.Categories
	recipes    *service.Recipes
}

type Request struct{}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Recipe struct {
	ID                   string    `json:"id"`
	Title                string    `json:"title"`
	Category             string    `json:"category"`
	CreatedByDisplayName string    `json:"createdByName"`
	CreatedAt            time.Time `json:"createdAt"`
}

type Response struct {
	Categories []Category `json:"categories"`
	Recipes    []Recipe   `json:"recipes"`
}

// FrontPage returns the landing page data. The two reads are independent
// and run concurrently.
func (h *Handler) FrontPage(ctx context.Context, _ *Request) (*Response, error) {
	var (
		categories []lutongdb.Category
		recent     []lutongdb.Recipe
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		categories, err = h.categories.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		recent, err = h.recipes.ListRecent(gctx, service.DefaultRecentLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &Response{
		Categories: make([]Category, len(categories)),
		Recipes:    make([]Recipe, len(recent)),
	}
	for i, c := range categories {
		res.Categories[i] = Category{ID: c.ID, Name: c.Name}
	}
	for i, r := range recent {
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
