// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/cenkalti/backoff/v5"
	"github.com/curioswitch/go-usegcp/middleware/firebaseauth"
	"golang.org/x/sync/singleflight"

	"github.com/curioswitch/lutongbahay/server/internal/errs"
	"github.com/curioswitch/lutongbahay/server/internal/lutongdb"
	"github.com/curioswitch/lutongbahay/server/internal/repository"
)

// NewResolver returns a resolver that builds principals from verified
// identity tokens, looking up the profile once per identity.
func NewResolver(users repository.Users) *Resolver {
	return &Resolver{users: users}
}

// Resolver caches the profile lookup per user ID so it runs once per
// identity change rather than once per request. Profile writes invalidate
// the cached entry.
type Resolver struct {
	users repository.Users

	cache sync.Map // uid -> Principal
	group singleflight.Group
}

// Middleware resolves the principal for requests that carry a verified
// identity token. It must run after the firebaseauth middleware.
func (r *Resolver) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()
		tok := firebaseauth.TokenFromContext(ctx)
		if tok == nil {
			next.ServeHTTP(w, req)
			return
		}
		p, err := r.Resolve(ctx, tok)
		if err != nil {
			slog.ErrorContext(ctx, "auth: resolving principal", "error", err)
			http.Error(w, "failed to resolve user", http.StatusInternalServerError)
			return
		}
		next.ServeHTTP(w, req.WithContext(NewContext(ctx, p)))
	})
}

// Resolve returns the principal for the verified token.
func (r *Resolver) Resolve(ctx context.Context, tok *fbauth.Token) (Principal, error) {
	if cached, ok := r.cache.Load(tok.UID); ok {
		return cached.(Principal), nil
	}
	p, err, _ := r.group.Do(tok.UID, func() (any, error) {
		p, err := r.lookup(ctx, tok)
		if err != nil {
			return Principal{}, err
		}
		r.cache.Store(tok.UID, p)
		return p, nil
	})
	if err != nil {
		return Principal{}, err
	}
	return p.(Principal), nil
}

// Invalidate drops the cached principal after a profile write.
func (r *Resolver) Invalidate(userID string) {
	r.cache.Delete(userID)
}

func (r *Resolver) lookup(ctx context.Context, tok *fbauth.Token) (Principal, error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 100 * time.Millisecond
	profile, err := backoff.Retry(ctx, func() (*lutongdb.UserProfile, error) {
		profile, err := r.users.Get(ctx, tok.UID)
		if errors.Is(err, errs.ErrNotFound) {
			return nil, backoff.Permanent(err)
		}
		return profile, err
	}, backoff.WithBackOff(bo), backoff.WithMaxTries(3))

	switch {
	case err == nil:
		return Principal{
			UserID:      tok.UID,
			Email:       profile.Email,
			DisplayName: profile.DisplayName,
			Role:        profile.Role,
			HasProfile:  true,
		}, nil
	case errors.Is(err, errs.ErrNotFound):
		// Authenticated without a profile. Signed in through a federated
		// provider before the profile write landed. Treated as a newbie.
		return Principal{
			UserID:      tok.UID,
			Email:       TokenEmail(tok),
			DisplayName: tokenName(tok),
			Role:        lutongdb.UserRoleNewbie,
			HasProfile:  false,
		}, nil
	default:
		return Principal{}, fmt.Errorf("auth: looking up profile: %w", err)
	}
}

// TokenEmail extracts the email identity from a verified token.
func TokenEmail(tok *fbauth.Token) string {
	if id, ok := tok.Firebase.Identities["email"]; ok {
		if idAny, ok := id.([]any); ok && len(idAny) > 0 {
			if email, ok := idAny[0].(string); ok {
				return email
			}
		}
	}
	return ""
}

func tokenName(tok *fbauth.Token) string {
	if name, ok := tok.Claims["name"].(string); ok {
		return name
	}
	return ""
}
