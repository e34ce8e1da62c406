// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package lutongdb defines the Firestore document models for lutong bahay.
//
// Field names on the wire are the Filipino names used by the original web
// client so the server can operate on the existing documents.
package lutongdb

import "time"

// Collection names in Firestore.
const (
	CollectionUsers      = "users"
	CollectionRecipes    = "recipes"
	CollectionCategories = "categories"
	CollectionComments   = "comments"
)

// UserRole determines what a user is allowed to do.
type UserRole string

const (
	// UserRoleCreator may author, edit, and delete their own recipes.
	UserRoleCreator UserRole = "mama"
	// UserRoleNewbie may browse recipes and leave comments.
	UserRoleNewbie UserRole = "bagitong_kusinero"
)

// Valid returns whether the role is one of the known roles.
func (r UserRole) Valid() bool {
	return r == UserRoleCreator || r == UserRoleNewbie
}

// UserProfile is the application profile for an identity provider user.
// The document ID matches the identity provider's subject ID.
type UserProfile struct {
	// ID is the Firestore document ID. Not stored in the document.
	ID string `firestore:"-"`

	// DisplayName is the name shown next to the user's content.
	DisplayName string `firestore:"pangalan"`

	// Email is the user's email address.
	Email string `firestore:"email"`

	// Role is the user's role, fixed at first sign-in unless explicitly changed.
	Role UserRole `firestore:"role"`

	// CreatedAt is assigned by the server on first write.
	CreatedAt time.Time `firestore:"petsaGawa,serverTimestamp"`
}

// Recipe is a published recipe.
type Recipe struct {
	// ID is the Firestore document ID. Not stored in the document.
	ID string `firestore:"-"`

	// Title is the recipe title.
	Title string `firestore:"pamagat"`

	// Category is the free-text category name. Denormalized, not a reference
	// to a category document.
	Category string `firestore:"kategorya"`

	// Ingredients are the ingredients, in order. Always at least one.
	Ingredients []string `firestore:"sangkap"`

	// Steps are the preparation steps, in order. Always at least one.
	Steps []string `firestore:"hakbang"`

	// CreatedByUserID is the ID of the user who created the recipe.
	CreatedByUserID string `firestore:"ginawaNi"`

	// CreatedByDisplayName is the author's display name, snapshotted at
	// write time. Never re-synced with the profile.
	CreatedByDisplayName string `firestore:"ginawaNiPangalan"`

	// CreatedAt is assigned by the server on every write, including updates.
	CreatedAt time.Time `firestore:"petsaGawa,serverTimestamp"`
}

// Category is a recipe category. Categories are only ever created, never
// updated or deleted. Names are unique within the collection.
type Category struct {
	// ID is the Firestore document ID. Not stored in the document.
	ID string `firestore:"-"`

	// Name is the category name.
	Name string `firestore:"name"`
}

// Comment is a user comment on a recipe. Comments are never edited; they are
// deleted only when their recipe is deleted.
type Comment struct {
	// ID is the Firestore document ID. Not stored in the document.
	ID string `firestore:"-"`

	// RecipeID is the ID of the recipe being commented on.
	RecipeID string `firestore:"recipeId"`

	// UserID is the ID of the commenting user.
	UserID string `firestore:"userId"`

	// UserDisplayName is the commenter's display name, snapshotted at
	// write time.
	UserDisplayName string `firestore:"userPangalan"`

	// Text is the comment text.
	Text string `firestore:"teksto"`

	// CreatedAt is assigned by the server at write time.
	CreatedAt time.Time `firestore:"petsaGawa,serverTimestamp"`
}

// SeedCategoryNames are the categories created for a fresh deployment.
var SeedCategoryNames = []string{"Panghimagas", "Ulam", "Meryenda", "Inumin"}
