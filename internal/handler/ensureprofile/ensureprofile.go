// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package ensureprofile

import (
	"context"
	"fmt"

	"github.com/curioswitch/lutongbahay/server/internal/auth"
	"github.com/curioswitch/lutongbahay/server/internal/errs"
	"github.com/curioswitch/lutongbahay/server/internal/lutongdb"
	"github.com/curioswitch/lutongbahay/server/internal/service"
)

func NewHandler(profiles *service.Profiles, resolver *auth.Resolver) *Handler {
	return &Handler{
		profiles: profiles,
		resolver: resolver,
	}
}

type Handler struct {
	profiles *service.Profiles
	resolver *auth.Resolver
}

type Request struct {
	// Role is the explicitly chosen role, if any. Empty keeps an existing
	// role or defaults a new profile to newbie.
	Role string `json:"role"`
}

type Response struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	Role        string `json:"role"`
}

// EnsureProfile upserts the caller's profile after a federated sign-in.
// Display name and email come from the identity token; the stored role is
// preserved unless the request chooses one.
func (h *Handler) EnsureProfile(ctx context.Context, req *Request) (*Response, error) {
	principal, ok := auth.FromContext(ctx)
	if !ok {
		return nil, fmt.Errorf("ensureprofile: sign in first: %w", errs.ErrUnauthorized)
	}
	profile, err := h.profiles.Ensure(ctx, principal.UserID, principal.DisplayName, principal.Email, lutongdb.UserRole(req.Role))
	if err != nil {
		return nil, err
	}
	h.resolver.Invalidate(principal.UserID)

	return &Response{
		UserID:      profile.ID,
		DisplayName: profile.DisplayName,
		Email:       profile.Email,
		Role:        string(profile.Role),
	}, nil
}
