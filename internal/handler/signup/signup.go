// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package signup

import (
	"context"
	"fmt"

	fbauth "firebase.google.com/go/v4/auth"

	"github.com/curioswitch/lutongbahay/server/internal/auth"
	"github.com/curioswitch/lutongbahay/server/internal/errs"
	"github.com/curioswitch/lutongbahay/server/internal/lutongdb"
	"github.com/curioswitch/lutongbahay/server/internal/service"
)

func NewHandler(fbAuth *fbauth.Client, profiles *service.Profiles, resolver *auth.Resolver) *Handler {
	return &Handler{
		fbAuth:   fbAuth,
		profiles: profiles,
		resolver: resolver,
	}
}

type Handler struct {
	fbAuth   *fbauth.Client
	profiles *service.Profiles
	resolver *auth.Resolver
}

type Request struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role"`
}

type Response struct {
	UserID string `json:"userId"`
}

// SignUp creates an identity provider account with email and password and
// writes the matching profile. The chosen role is fixed at creation.
func (h *Handler) SignUp(ctx context.Context, req *Request) (*Response, error) {
	if req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("signup: email and password are required: %w", errs.ErrInvalidArgument)
	}
	role := lutongdb.UserRole(req.Role)
	if !role.Valid() {
		return nil, fmt.Errorf("signup: unknown role %q: %w", req.Role, errs.ErrInvalidArgument)
	}

	user, err := h.fbAuth.CreateUser(ctx, (&fbauth.UserToCreate{}).
		Email(req.Email).
		Password(req.Password).
		DisplayName(req.DisplayName))
	if err != nil {
		return nil, fmt.Errorf("signup: creating identity: %w", err)
	}

	if _, err := h.profiles.Create(ctx, user.UID, req.DisplayName, req.Email, role); err != nil {
		return nil, err
	}
	h.resolver.Invalidate(user.UID)

	return &Response{UserID: user.UID}, nil
}
