// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/curioswitch/lutongbahay/server/internal/auth"
	"github.com/curioswitch/lutongbahay/server/internal/errs"
	"github.com/curioswitch/lutongbahay/server/internal/lutongdb"
	"github.com/curioswitch/lutongbahay/server/internal/repository"
)

// NewComments constructs the comment service.
func NewComments(repo repository.Comments) *Comments {
	return &Comments{repo: repo}
}

// Comments implements comment creation and listing. Comments are never
// edited or individually deleted.
type Comments struct {
	repo repository.Comments
}

// Add leaves a comment on a recipe. Any authenticated user may comment; the
// commenter's display name is snapshotted at write time.
func (s *Comments) Add(ctx context.Context, p auth.Principal, recipeID, text string) (*lutongdb.Comment, error) {
	if recipeID == "" {
		return nil, fmt.Errorf("service: empty recipe id: %w", errs.ErrInvalidArgument)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("service: empty comment text: %w", errs.ErrInvalidArgument)
	}
	comment := &lutongdb.Comment{
		RecipeID:        recipeID,
		UserID:          p.UserID,
		UserDisplayName: p.DisplayName,
		Text:            text,
	}
	id, err := s.repo.Add(ctx, comment)
	if err != nil {
		return nil, err
	}
	comment.ID = id
	return comment, nil
}

// ListByRecipe returns the recipe's comments, newest first. The store does
// not guarantee ordering on this query, so the sort happens here.
func (s *Comments) ListByRecipe(ctx context.Context, recipeID string) ([]lutongdb.Comment, error) {
	if recipeID == "" {
		return nil, fmt.Errorf("service: empty recipe id: %w", errs.ErrInvalidArgument)
	}
	comments, err := s.repo.ListByRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
	return comments, nil
}
