// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package auth resolves the authenticated user's application profile into an
// explicit per-request principal. There is no ambient session state; every
// authorization decision reads the principal from the request context.
package auth

import (
	"context"

	"github.com/curioswitch/lutongbahay/server/internal/lutongdb"
)

// Principal is the caller's identity and role for one request.
type Principal struct {
	// UserID is the identity provider's subject ID.
	UserID string

	// Email is the user's email address from the identity token.
	Email string

	// DisplayName is the profile display name, or the token name when no
	// profile exists yet.
	DisplayName string

	// Role is the user's role. Newbie when no profile exists.
	Role lutongdb.UserRole

	// HasProfile is false for an authenticated user whose profile document
	// is missing, a degraded state treated as browse/comment only.
	HasProfile bool
}

// CanAuthorRecipes returns whether the principal may create, edit, and
// delete recipes.
func (p Principal) CanAuthorRecipes() bool {
	return p.HasProfile && p.Role == lutongdb.UserRoleCreator
}

type principalContextKey struct{}

var principalContextKeyInstance = principalContextKey{}

// NewContext returns a context carrying the principal.
func NewContext(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalContextKeyInstance, p)
}

// FromContext returns the principal for the request, if authenticated.
func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalContextKeyInstance).(Principal)
	return p, ok
}
