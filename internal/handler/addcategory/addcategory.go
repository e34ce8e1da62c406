// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package addcategory

import (
	"context"
	"errors"
	"fmt"

	"github.com/curioswitch/lutongbahay/server/internal/auth"
	"github.com/curioswitch/lutongbahay/server/internal/errs"
	"github.com/curioswitch/lutongbahay/server/internal/httpapi"
	"github.com/curioswitch/lutongbahay/server/internal/service"
)

func NewHandler(categories *service.Categories) *Handler {
	return &Handler{categories: categories}
}

type Handler struct {
	categories *service.Categories
}

type Request struct {
	Name string `json:"name"`
}

type Response struct {
	Name string `json:"name"`
}

// AddCategory stores a new category with the exact given name. Any signed-in
// user may add categories.
func (h *Handler) AddCategory(ctx context.Context, req *Request) (*Response, error) {
	if _, ok := auth.FromContext(ctx); !ok {
		return nil, fmt.Errorf("addcategory: sign in to add categories: %w", errs.ErrUnauthorized)
	}
	category, err := h.categories.Add(ctx, req.Name)
	if errors.Is(err, errs.ErrAlreadyExists) {
		// The message the web client shows verbatim.
		return nil, httpapi.Error(errs.ErrAlreadyExists, "Category already exists.")
	}
	if err != nil {
		return nil, err
	}
	return &Response{Name: category.Name}, nil
}
