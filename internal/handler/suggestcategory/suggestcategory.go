// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package suggestcategory

import (
	"context"
	"fmt"

	"github.com/curioswitch/lutongbahay/server/internal/auth"
	"github.com/curioswitch/lutongbahay/server/internal/errs"
	"github.com/curioswitch/lutongbahay/server/internal/i18n"
	"github.com/curioswitch/lutongbahay/server/internal/service"
)

// languageNames maps request language subtags to the human-readable names
// the prompt template expects.
var languageNames = map[string]string{
	"en":  "English",
	"fil": "Tagalog",
	"tl":  "Tagalog",
}

func NewHandler(categories *service.Categories, defaultLanguage string) *Handler {
	return &Handler{
		categories:      categories,
		defaultLanguage: defaultLanguage,
	}
}

type Handler struct {
	categories      *service.Categories
	defaultLanguage string
}

type Request struct {
	Name        string   `json:"name"`
	Ingredients []string `json:"ingredients"`
}

type Response struct {
	Suggestion string `json:"suggestion"`
}

// SuggestCategory asks the generative backend for a canonical category name
// for the given free text. The suggestion is advisory; nothing is stored.
func (h *Handler) SuggestCategory(ctx context.Context, req *Request) (*Response, error) {
	if _, ok := auth.FromContext(ctx); !ok {
		return nil, fmt.Errorf("suggestcategory: sign in to get suggestions: %w", errs.ErrUnauthorized)
	}
	language := h.defaultLanguage
	if name, ok := languageNames[i18n.UserLanguage(ctx)]; ok {
		language = name
	}
	suggestion, err := h.categories.Suggest(ctx, service.SuggestionSeed{
		Name:        req.Name,
		Ingredients: req.Ingredients,
		Language:    language,
	})
	if err != nil {
		return nil, err
	}
	return &Response{Suggestion: suggestion}, nil
}
