package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curioswitch/lutongbahay/server/internal/errs"
)

func validInput() RecipeInput {
	return RecipeInput{
		Title:       "Chicken Adobo",
		Category:    "Ulam",
		Ingredients: []string{"chicken", "soy sauce", "vinegar"},
		Steps:       []string{"Marinate the chicken.", "Simmer until tender."},
	}
}

func TestRecipes_Create(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*RecipeInput)
		wantErr error
	}{
		{name: "valid"},
		{
			name:    "empty title",
			mutate:  func(in *RecipeInput) { in.Title = "  " },
			wantErr: errs.ErrInvalidArgument,
		},
		{
			name:    "empty ingredients",
			mutate:  func(in *RecipeInput) { in.Ingredients = nil },
			wantErr: errs.ErrInvalidArgument,
		},
		{
			name:    "blank-only ingredients",
			mutate:  func(in *RecipeInput) { in.Ingredients = []string{" ", ""} },
			wantErr: errs.ErrInvalidArgument,
		},
		{
			name:    "empty steps",
			mutate:  func(in *RecipeInput) { in.Steps = []string{} },
			wantErr: errs.ErrInvalidArgument,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			store := newFakeStore()
			s := NewRecipes(&fakeRecipeRepo{store: store})

			in := validInput()
			if tc.mutate != nil {
				tc.mutate(&in)
			}
			recipe, err := s.Create(ctx, creator("user-a", "Ana"), in)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Empty(t, store.recipes, "failed create must not write")
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, recipe.ID)
			assert.Equal(t, "user-a", recipe.CreatedByUserID)
			assert.Equal(t, "Ana", recipe.CreatedByDisplayName)
			assert.Len(t, store.recipes, 1)
		})
	}
}

func TestRecipes_Create_RequiresCreatorRole(t *testing.T) {
	t.Parallel()
	store := newFakeStore()
	s := NewRecipes(&fakeRecipeRepo{store: store})

	_, err := s.Create(context.Background(), newbie("user-b", "Ben"), validInput())
	require.ErrorIs(t, err, errs.ErrUnauthorized)
	assert.Empty(t, store.recipes)
}

func TestRecipes_Update(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newFakeStore()
	s := NewRecipes(&fakeRecipeRepo{store: store})

	created, err := s.Create(ctx, creator("user-a", "Ana"), validInput())
	require.NoError(t, err)

	in := validInput()
	in.Title = "Adobong Manok"
	require.NoError(t, s.Update(ctx, creator("user-a", "Ana"), created.ID, in))

	updated := store.recipes[created.ID]
	assert.Equal(t, "Adobong Manok", updated.Title)
	assert.True(t, updated.CreatedAt.After(created.CreatedAt),
		"update stamps a fresh creation time")
}

func TestRecipes_Update_NotOwner(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newFakeStore()
	s := NewRecipes(&fakeRecipeRepo{store: store})

	created, err := s.Create(ctx, creator("user-a", "Ana"), validInput())
	require.NoError(t, err)

	in := validInput()
	in.Title = "Hijacked"
	err = s.Update(ctx, creator("user-b", "Ben"), created.ID, in)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
	assert.Equal(t, "Chicken Adobo", store.recipes[created.ID].Title,
		"rejected update must not mutate storage")
}

func TestRecipes_Update_NotFound(t *testing.T) {
	t.Parallel()
	s := NewRecipes(&fakeRecipeRepo{store: newFakeStore()})
	err := s.Update(context.Background(), creator("user-a", "Ana"), "missing", validInput())
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestRecipes_Delete_Cascades(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newFakeStore()
	s := NewRecipes(&fakeRecipeRepo{store: store})
	comments := NewComments(&fakeCommentRepo{store: store})

	created, err := s.Create(ctx, creator("user-a", "Ana"), validInput())
	require.NoError(t, err)
	other, err := s.Create(ctx, creator("user-a", "Ana"), validInput())
	require.NoError(t, err)

	for range 3 {
		_, err := comments.Add(ctx, newbie("user-b", "Ben"), created.ID, "Sarap!")
		require.NoError(t, err)
	}
	_, err = comments.Add(ctx, newbie("user-b", "Ben"), other.ID, "Keeper.")
	require.NoError(t, err)

	deleted, err := s.Delete(ctx, creator("user-a", "Ana"), created.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, deleted)

	_, err = s.Get(ctx, created.ID)
	require.ErrorIs(t, err, errs.ErrNotFound)

	remaining, err := comments.ListByRecipe(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	kept, err := comments.ListByRecipe(ctx, other.ID)
	require.NoError(t, err)
	assert.Len(t, kept, 1, "comments on other recipes survive")
}

func TestRecipes_Delete_MidBatchFailureLeavesAll(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newFakeStore()
	s := NewRecipes(&fakeRecipeRepo{store: store})
	comments := NewComments(&fakeCommentRepo{store: store})

	created, err := s.Create(ctx, creator("user-a", "Ana"), validInput())
	require.NoError(t, err)
	for range 3 {
		_, err := comments.Add(ctx, newbie("user-b", "Ben"), created.ID, "Sarap!")
		require.NoError(t, err)
	}

	store.failCascade = true
	_, err = s.Delete(ctx, creator("user-a", "Ana"), created.ID)
	require.Error(t, err)

	assert.Len(t, store.recipes, 1, "recipe untouched after failed batch")
	assert.Len(t, store.comments, 3, "comments untouched after failed batch")
}

func TestRecipes_Delete_NotOwner(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newFakeStore()
	s := NewRecipes(&fakeRecipeRepo{store: store})

	created, err := s.Create(ctx, creator("user-a", "Ana"), validInput())
	require.NoError(t, err)

	_, err = s.Delete(ctx, creator("user-b", "Ben"), created.ID)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
	assert.Len(t, store.recipes, 1)
}

func TestRecipes_ListByCategory(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newFakeStore()
	s := NewRecipes(&fakeRecipeRepo{store: store})

	created, err := s.Create(ctx, creator("user-a", "Ana"), validInput())
	require.NoError(t, err)

	dessert := validInput()
	dessert.Category = "Panghimagas"
	_, err = s.Create(ctx, creator("user-a", "Ana"), dessert)
	require.NoError(t, err)

	ulam, err := s.ListByCategory(ctx, "Ulam")
	require.NoError(t, err)
	require.Len(t, ulam, 1)
	assert.Equal(t, created.ID, ulam[0].ID)

	_, err = s.Delete(ctx, creator("user-a", "Ana"), created.ID)
	require.NoError(t, err)

	ulam, err = s.ListByCategory(ctx, "Ulam")
	require.NoError(t, err)
	assert.Empty(t, ulam)
}

func TestRecipes_ListRecent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newFakeStore()
	s := NewRecipes(&fakeRecipeRepo{store: store})

	var ids []string
	for range 7 {
		created, err := s.Create(ctx, creator("user-a", "Ana"), validInput())
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}

	recent, err := s.ListRecent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, recent, DefaultRecentLimit)
	for i, r := range recent {
		assert.Equal(t, ids[len(ids)-1-i], r.ID, "newest first")
		if i > 0 {
			assert.True(t, recent[i-1].CreatedAt.After(r.CreatedAt))
		}
	}
}

func TestRecipes_ListRecent_Empty(t *testing.T) {
	t.Parallel()
	s := NewRecipes(&fakeRecipeRepo{store: newFakeStore()})
	recent, err := s.ListRecent(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, recent)
}

func TestRecipes_Get_NotFound(t *testing.T) {
	t.Parallel()
	s := NewRecipes(&fakeRecipeRepo{store: newFakeStore()})
	_, err := s.Get(context.Background(), "missing")
	require.ErrorIs(t, err, errs.ErrNotFound)
}
