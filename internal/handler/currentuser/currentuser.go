// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package currentuser

import (
	"context"
	"fmt"

	"github.com/curioswitch/lutongbahay/server/internal/auth"
	"github.com/curioswitch/lutongbahay/server/internal/errs"
)

func NewHandler() *Handler {
	return &Handler{}
}

type Handler struct{}

type Request struct{}

type Response struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	HasProfile  bool   `json:"hasProfile"`
}

// CurrentUser returns the caller's resolved identity and role. A missing
// profile is reported so the client can finish sign-up.
func (h *Handler) CurrentUser(ctx context.Context, _ *Request) (*Response, error) {
	principal, ok := auth.FromContext(ctx)
	if !ok {
		return nil, fmt.Errorf("currentuser: not signed in: %w", errs.ErrUnauthorized)
	}
	return &Response{
		UserID:      principal.UserID,
		DisplayName: principal.DisplayName,
		Email:       principal.Email,
		Role:        string(principal.Role),
		HasProfile:  principal.HasProfile,
	}, nil
}
