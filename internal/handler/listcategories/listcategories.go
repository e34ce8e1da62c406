// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package listcategories

import (
	"context"

	"github.com/curioswitch/lutongbahay/server/internal/service"
)

func NewHandler(categories *service.Categories) *Handler {
	return &Handler{categories: categories}
}

type Handler struct {
	categories *service.Categories
}

type Request struct{}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Response struct {
	Categories []Category `json:"categories"`
}

// ListCategories returns all categories, unordered.
func (h *Handler) ListCategories(ctx context.Context, _ *Request) (*Response, error) {
	categories, err := h.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	res := &Response{Categories: make([]Category, len(categories))}
	for i, c := range categories {
		res.Categories[i] = Category{ID: c.ID, Name: c.Name}
	}
	return res, nil
}
