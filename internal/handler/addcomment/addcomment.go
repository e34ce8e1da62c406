// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package addcomment

import (
	"context"
	"fmt"
	"time"

	"github.com/curioswitch/lutongbahay/server/internal/auth"
	"github.com/curioswitch/lutongbahay/server/internal/errs"
	"github.com/curioswitch/lutongbahay/server/internal/service"
)

func NewHandler(comments *service.Comments) *Handler {
	return &Handler{comments: comments}
}

type Handler struct {
	comments *service.Comments
}

type Request struct {
	RecipeID string `json:"recipeId"`
	Text     string `json:"text"`
}

type Response struct {
	CommentID       string    `json:"commentId"`
	UserDisplayName string    `json:"userName"`
	CreatedAt       time.Time `json:"createdAt"`
}

// AddComment leaves a comment on a recipe. Any signed-in user may comment,
// regardless of role.
func (h *Handler) AddComment(ctx context.Context, req *Request) (*Response, error) {
	principal, ok := auth.FromContext(ctx)
	if !ok {
		return nil, fmt.Errorf("addcomment: sign in to comment: %w", errs.ErrUnauthorized)
	}
	comment, err := h.comments.Add(ctx, principal, req.RecipeID, req.Text)
	if err != nil {
		return nil, err
	}
	return &Response{
		CommentID:       comment.ID,
		UserDisplayName: comment.UserDisplayName,
		CreatedAt:       comment.CreatedAt,
	}, nil
}
