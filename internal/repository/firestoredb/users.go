// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package firestoredb

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"

	"github.com/curioswitch/lutongbahay/server/internal/errs"
	"github.com/curioswitch/lutongbahay/server/internal/lutongdb"
)

// NewUsers returns a user profile repository backed by Firestore.
func NewUsers(client *firestore.Client) *Users {
	return &Users{client: client}
}

// Users implements repository.Users on Firestore.
type Users struct {
	client *firestore.Client
}

func (u *Users) Get(ctx context.Context, id string) (*lutongdb.UserProfile, error) {
	snap, err := u.client.Collection(lutongdb.CollectionUsers).Doc(id).Get(ctx)
	if snap != nil && !snap.Exists() {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("firestoredb: getting user profile: %w", err)
	}
	var profile lutongdb.UserProfile
	if err := snap.DataTo(&profile); err != nil {
		return nil, fmt.Errorf("firestoredb: unmarshalling user profile: %w", err)
	}
	profile.ID = snap.Ref.ID
	return &profile, nil
}

func (u *Users) Create(ctx context.Context, profile *lutongdb.UserProfile) error {
	ref := u.client.Collection(lutongdb.CollectionUsers).Doc(profile.ID)
	err := u.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err == nil && snap.Exists() {
			return errs.ErrAlreadyExists
		}
		if snap != nil && !snap.Exists() {
			return tx.Create(ref, profile)
		}
		return err
	})
	if err != nil {
		return wrapTxErr("creating user profile", err)
	}
	return nil
}

func (u *Users) Ensure(ctx context.Context, profile *lutongdb.UserProfile, overwriteRole bool) error {
	ref := u.client.Collection(lutongdb.CollectionUsers).Doc(profile.ID)
	err := u.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if snap != nil && !snap.Exists() {
			return tx.Create(ref, profile)
		}
		if err != nil {
			return err
		}
		updates := []firestore.Update{
			{Path: "pangalan", Value: profile.DisplayName},
			{Path: "email", Value: profile.Email},
		}
		if overwriteRole {
			updates = append(updates, firestore.Update{Path: "role", Value: profile.Role})
		}
		return tx.Update(ref, updates)
	})
	if err != nil {
		return wrapTxErr("ensuring user profile", err)
	}
	return nil
}
