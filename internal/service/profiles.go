// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/curioswitch/lutongbahay/server/internal/errs"
	"github.com/curioswitch/lutongbahay/server/internal/lutongdb"
	"github.com/curioswitch/lutongbahay/server/internal/repository"
)

// NewProfiles constructs the profile service.
func NewProfiles(repo repository.Users) *Profiles {
	return &Profiles{repo: repo}
}

// Profiles manages user profile documents. Profiles are created at first
// sign-in and never deleted.
type Profiles struct {
	repo repository.Users
}

// Get returns the profile for the user ID.
func (s *Profiles) Get(ctx context.Context, id string) (*lutongdb.UserProfile, error) {
	if id == "" {
		return nil, fmt.Errorf("service: empty user id: %w", errs.ErrInvalidArgument)
	}
	return s.repo.Get(ctx, id)
}

// Create writes the profile for a newly signed-up user. The role is fixed at
// creation.
func (s *Profiles) Create(ctx context.Context, id, displayName, email string, role lutongdb.UserRole) (*lutongdb.UserProfile, error) {
	if id == "" {
		return nil, fmt.Errorf("service: empty user id: %w", errs.ErrInvalidArgument)
	}
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return nil, fmt.Errorf("service: empty display name: %w", errs.ErrInvalidArgument)
	}
	if !role.Valid() {
		return nil, fmt.Errorf("service: unknown role %q: %w", role, errs.ErrInvalidArgument)
	}
	profile := &lutongdb.UserProfile{
		ID:          id,
		DisplayName: displayName,
		Email:       email,
		Role:        role,
	}
	if err := s.repo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Ensure upserts the profile after a federated sign-in. When role is empty
// the user did not choose one: a new profile defaults to newbie and an
// existing profile keeps its role. A non-empty role is written through.
func (s *Profiles) Ensure(ctx context.Context, id, displayName, email string, role lutongdb.UserRole) (*lutongdb.UserProfile, error) {
	if id == "" {
		return nil, fmt.Errorf("service: empty user id: %w", errs.ErrInvalidArgument)
	}
	overwriteRole := role != ""
	if overwriteRole && !role.Valid() {
		return nil, fmt.Errorf("service: unknown role %q: %w", role, errs.ErrInvalidArgument)
	}
	if !overwriteRole {
		role = lutongdb.UserRoleNewbie
	}
	profile := &lutongdb.UserProfile{
		ID:          id,
		DisplayName: strings.TrimSpace(displayName),
		Email:       email,
		Role:        role,
	}
	if err := s.repo.Ensure(ctx, profile, overwriteRole); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}
