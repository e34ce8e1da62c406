package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/curioswitch/lutongbahay/server/internal/auth"
	"github.com/curioswitch/lutongbahay/server/internal/errs"
	"github.com/curioswitch/lutongbahay/server/internal/lutongdb"
	"github.com/curioswitch/lutongbahay/server/internal/repository"
)

// clock hands out strictly increasing timestamps, standing in for the
// store's monotonic server-assigned write times.
type clock struct {
	now time.Time
}

func (c *clock) tick() time.Time {
	c.now = c.now.Add(time.Second)
	return c.now
}

type fakeStore struct {
	clock clock

	recipes  map[string]*lutongdb.Recipe
	comments map[string]*lutongdb.Comment
	nextID   int

	// failCascade simulates a mid-batch failure: the transaction reports an
	// error and no document is touched.
	failCascade bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		recipes:  map[string]*lutongdb.Recipe{},
		comments: map[string]*lutongdb.Comment{},
	}
}

func (s *fakeStore) id(prefix string) string {
	s.nextID++
	return fmt.Sprintf("%s-%d", prefix, s.nextID)
}

type fakeRecipeRepo struct {
	store *fakeStore
}

var _ repository.Recipes = (*fakeRecipeRepo)(nil)

func (f *fakeRecipeRepo) Create(_ context.Context, recipe *lutongdb.Recipe) (string, error) {
	id := f.store.id("recipe")
	stored := *recipe
	stored.ID = id
	stored.CreatedAt = f.store.clock.tick()
	f.store.recipes[id] = &stored
	return id, nil
}

func (f *fakeRecipeRepo) Get(_ context.Context, id string) (*lutongdb.Recipe, error) {
	stored, ok := f.store.recipes[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	recipe := *stored
	return &recipe, nil
}

func (f *fakeRecipeRepo) ReplaceOwned(_ context.Context, id string, ownerID string, recipe *lutongdb.Recipe) error {
	stored, ok := f.store.recipes[id]
	if !ok {
		return errs.ErrNotFound
	}
	if stored.CreatedByUserID != ownerID {
		return errs.ErrUnauthorized
	}
	replaced := *recipe
	replaced.ID = id
	replaced.CreatedAt = f.store.clock.tick()
	f.store.recipes[id] = &replaced
	return nil
}

func (f *fakeRecipeRepo) DeleteCascadeOwned(_ context.Context, id string, ownerID string) (int, error) {
	stored, ok := f.store.recipes[id]
	if !ok {
		return 0, errs.ErrNotFound
	}
	if stored.CreatedByUserID != ownerID {
		return 0, errs.ErrUnauthorized
	}
	if f.store.failCascade {
		return 0, errors.New("simulated transaction failure")
	}
	deleted := 0
	for cid, c := range f.store.comments {
		if c.RecipeID == id {
			delete(f.store.comments, cid)
			deleted++
		}
	}
	delete(f.store.recipes, id)
	return deleted, nil
}

func (f *fakeRecipeRepo) ListByCategory(_ context.Context, category string) ([]lutongdb.Recipe, error) {
	var recipes []lutongdb.Recipe
	for _, r := range f.store.recipes {
		if r.Category == category {
			recipes = append(recipes, *r)
		}
	}
	return recipes, nil
}

func (f *fakeRecipeRepo) ListRecent(_ context.Context, limit int) ([]lutongdb.Recipe, error) {
	var recipes []lutongdb.Recipe
	for _, r := range f.store.recipes {
		recipes = append(recipes, *r)
	}
	for i := range recipes {
		for j := i + 1; j < len(recipes); j++ {
			if recipes[j].CreatedAt.After(recipes[i].CreatedAt) {
				recipes[i], recipes[j] = recipes[j], recipes[i]
			}
		}
	}
	if len(recipes) > limit {
		recipes = recipes[:limit]
	}
	return recipes, nil
}

type fakeCommentRepo struct {
	store *fakeStore
}

var _ repository.Comments = (*fakeCommentRepo)(nil)

func (f *fakeCommentRepo) Add(_ context.Context, comment *lutongdb.Comment) (string, error) {
	id := f.store.id("comment")
	stored := *comment
	stored.ID = id
	stored.CreatedAt = f.store.clock.tick()
	f.store.comments[id] = &stored
	return id, nil
}

func (f *fakeCommentRepo) ListByRecipe(_ context.Context, recipeID string) ([]lutongdb.Comment, error) {
	// Insertion order is not preserved; the map ordering stands in for the
	// store returning documents unordered.
	var comments []lutongdb.Comment
	for _, c := range f.store.comments {
		if c.RecipeID == recipeID {
			comments = append(comments, *c)
		}
	}
	return comments, nil
}

type fakeCategoryRepo struct {
	byName map[string]lutongdb.Category
	nextID int
}

var _ repository.Categories = (*fakeCategoryRepo)(nil)

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{byName: map[string]lutongdb.Category{}}
}

func (f *fakeCategoryRepo) List(_ context.Context) ([]lutongdb.Category, error) {
	var categories []lutongdb.Category
	for _, c := range f.byName {
		categories = append(categories, c)
	}
	return categories, nil
}

func (f *fakeCategoryRepo) InsertUnique(_ context.Context, name string) (*lutongdb.Category, error) {
	if _, ok := f.byName[name]; ok {
		return nil, errs.ErrAlreadyExists
	}
	f.nextID++
	category := lutongdb.Category{ID: fmt.Sprintf("category-%d", f.nextID), Name: name}
	f.byName[name] = category
	return &category, nil
}

type fakeUserRepo struct {
	profiles map[string]*lutongdb.UserProfile
}

var _ repository.Users = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{profiles: map[string]*lutongdb.UserProfile{}}
}

func (f *fakeUserRepo) Get(_ context.Context, id string) (*lutongdb.UserProfile, error) {
	stored, ok := f.profiles[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	profile := *stored
	return &profile, nil
}

func (f *fakeUserRepo) Create(_ context.Context, profile *lutongdb.UserProfile) error {
	if _, ok := f.profiles[profile.ID]; ok {
		return errs.ErrAlreadyExists
	}
	stored := *profile
	f.profiles[profile.ID] = &stored
	return nil
}

func (f *fakeUserRepo) Ensure(_ context.Context, profile *lutongdb.UserProfile, overwriteRole bool) error {
	stored, ok := f.profiles[profile.ID]
	if !ok {
		created := *profile
		f.profiles[profile.ID] = &created
		return nil
	}
	stored.DisplayName = profile.DisplayName
	stored.Email = profile.Email
	if overwriteRole {
		stored.Role = profile.Role
	}
	return nil
}

type fakeSuggester struct {
	seed       SuggestionSeed
	suggestion string
	err        error
}

func (f *fakeSuggester) SuggestCategory(_ context.Context, seed SuggestionSeed) (string, error) {
	f.seed = seed
	return f.suggestion, f.err
}

func creator(id, name string) auth.Principal {
	return auth.Principal{UserID: id, DisplayName: name, Role: lutongdb.UserRoleCreator, HasProfile: true}
}

func newbie(id, name string) auth.Principal {
	return auth.Principal{UserID: id, DisplayName: name, Role: lutongdb.UserRoleNewbie, HasProfile: true}
}
