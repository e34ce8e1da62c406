package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curioswitch/lutongbahay/server/internal/errs"
)

func TestCategories_Add(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeCategoryRepo()
	s := NewCategories(repo, nil)

	category, err := s.Add(ctx, " Ulam ")
	require.NoError(t, err)
	assert.Equal(t, "Ulam", category.Name)
	assert.Len(t, repo.byName, 1)
}

func TestCategories_Add_DuplicateIsIdempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeCategoryRepo()
	s := NewCategories(repo, nil)

	_, err := s.Add(ctx, "Ulam")
	require.NoError(t, err)

	_, err = s.Add(ctx, "Ulam")
	require.ErrorIs(t, err, errs.ErrAlreadyExists)
	assert.Len(t, repo.byName, 1, "second add must not write")
}

func TestCategories_Add_CaseSensitive(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeCategoryRepo()
	s := NewCategories(repo, nil)

	_, err := s.Add(ctx, "Ulam")
	require.NoError(t, err)
	_, err = s.Add(ctx, "ulam")
	require.NoError(t, err, "uniqueness is exact-match")
	assert.Len(t, repo.byName, 2)
}

func TestCategories_Add_Empty(t *testing.T) {
	t.Parallel()
	s := NewCategories(newFakeCategoryRepo(), nil)
	_, err := s.Add(context.Background(), "   ")
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestCategories_Suggest(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeCategoryRepo()
	suggester := &fakeSuggester{suggestion: " Ulam \n"}
	s := NewCategories(repo, suggester)

	got, err := s.Suggest(ctx, SuggestionSeed{
		Name:        " Adobo sa Gata ",
		Ingredients: []string{"chicken", "coconut milk"},
		Language:    "Tagalog",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ulam", got)
	assert.Equal(t, "Adobo sa Gata", suggester.seed.Name)
	assert.Empty(t, repo.byName, "suggestion never writes")
}

func TestCategories_Suggest_EmptySeed(t *testing.T) {
	t.Parallel()
	s := NewCategories(newFakeCategoryRepo(), &fakeSuggester{})
	_, err := s.Suggest(context.Background(), SuggestionSeed{Name: " "})
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestCategories_Suggest_BackendError(t *testing.T) {
	t.Parallel()
	s := NewCategories(newFakeCategoryRepo(), &fakeSuggester{err: errors.New("model overloaded")})
	_, err := s.Suggest(context.Background(), SuggestionSeed{Name: "Adobo"})
	require.ErrorContains(t, err, "model overloaded")
}
