// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"strings"

	firebase "firebase.google.com/go/v4"
	"github.com/curioswitch/go-curiostack/server"
	"github.com/curioswitch/go-usegcp/middleware/firebaseauth"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/openai/openai-go/v3"
	"google.golang.org/genai"

	"github.com/curioswitch/lutongbahay/server/internal/auth"
	"github.com/curioswitch/lutongbahay/server/internal/config"
	"github.com/curioswitch/lutongbahay/server/internal/errs"
	"github.com/curioswitch/lutongbahay/server/internal/handler/addcategory"
	"github.com/curioswitch/lutongbahay/server/internal/handler/addcomment"
	"github.com/curioswitch/lutongbahay/server/internal/handler/addrecipe"
	"github.com/curioswitch/lutongbahay/server/internal/handler/currentuser"
	"github.com/curioswitch/lutongbahay/server/internal/handler/deleterecipe"
	"github.com/curioswitch/lutongbahay/server/internal/handler/ensureprofile"
	"github.com/curioswitch/lutongbahay/server/internal/handler/frontpage"
	"github.com/curioswitch/lutongbahay/server/internal/handler/getrecipe"
	"github.com/curioswitch/lutongbahay/server/internal/handler/listcategories"
	"github.com/curioswitch/lutongbahay/server/internal/handler/listrecipes"
	"github.com/curioswitch/lutongbahay/server/internal/handler/signup"
	"github.com/curioswitch/lutongbahay/server/internal/handler/suggestcategory"
	"github.com/curioswitch/lutongbahay/server/internal/handler/updaterecipe"
	"github.com/curioswitch/lutongbahay/server/internal/httpapi"
	"github.com/curioswitch/lutongbahay/server/internal/i18n"
	"github.com/curioswitch/lutongbahay/server/internal/lutongdb"
	"github.com/curioswitch/lutongbahay/server/internal/repository/firestoredb"
	"github.com/curioswitch/lutongbahay/server/internal/service"
	"github.com/curioswitch/lutongbahay/server/internal/suggest"
)

//go:embed conf/*.yaml
var confFiles embed.FS

// publicPaths are served without authentication: browsing and sign-up.
var publicPaths = map[string]bool{
	"/api/frontpage":       true,
	"/api/recipes/get":     true,
	"/api/recipes/list":    true,
	"/api/categories/list": true,
	"/api/auth/signup":     true,
}

func main() {
	conf, _ := fs.Sub(confFiles, "conf")
	os.Exit(server.Main(&config.Config{}, conf, setupServer))
}

func setupServer(ctx context.Context, conf *config.Config, s *server.Server) error {
	mux := server.Mux(s)

	fbApp, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: conf.Google.Project})
	if err != nil {
		return fmt.Errorf("main: create firebase app: %w", err)
	}

	fbAuth, err := fbApp.Auth(ctx)
	if err != nil {
		return fmt.Errorf("main: create firebase auth client: %w", err)
	}

	firestore, err := fbApp.Firestore(ctx)
	if err != nil {
		return fmt.Errorf("main: create firestore client: %w", err)
	}
	defer func() {
		if err := firestore.Close(); err != nil {
			slog.ErrorContext(ctx, "main: close firestore client", "error", err)
		}
	}()

	recipesRepo := firestoredb.NewRecipes(firestore)
	categoriesRepo := firestoredb.NewCategories(firestore)
	commentsRepo := firestoredb.NewComments(firestore)
	usersRepo := firestoredb.NewUsers(firestore)

	var suggester service.Suggester
	switch conf.Suggestion.Backend {
	case "openai":
		oai := openai.NewClient()
		suggester = suggest.NewOpenAI(&oai, conf.Suggestion.OpenAIModel)
	default:
		genAI, err := genai.NewClient(ctx, &genai.ClientConfig{
			Backend: genai.BackendGeminiAPI,
			Project: conf.Google.Project,
		})
		if err != nil {
			return fmt.Errorf("main: create genai client: %w", err)
		}
		suggester = suggest.NewGemini(genAI, conf.Suggestion.Model)
	}

	recipes := service.NewRecipes(recipesRepo)
	categories := service.NewCategories(categoriesRepo, suggester)
	comments := service.NewComments(commentsRepo)
	profiles := service.NewProfiles(usersRepo)

	seedCategories(ctx, categories)

	resolver := auth.NewResolver(usersRepo)
	fbMW := firebaseauth.NewMiddleware(fbAuth)

	mux.Use(middleware.Maybe(func(h http.Handler) http.Handler {
		return fbMW(resolver.Middleware(h))
	}, func(r *http.Request) bool {
		switch {
		case strings.HasPrefix(r.URL.Path, "/internal/"):
			return false
		case publicPaths[r.URL.Path]:
			return false
		default:
			return true
		}
	}))

	mux.Use(i18n.Middleware())

	httpapi.Handle(mux, "/api/frontpage", frontpage.NewHandler(categories, recipes).FrontPage)
	httpapi.Handle(mux, "/api/recipes/get", getrecipe.NewHandler(recipes, comments).GetRecipe)
	httpapi.Handle(mux, "/api/recipes/list", listrecipes.NewHandler(recipes).ListRecipes)
	httpapi.Handle(mux, "/api/recipes/add", addrecipe.NewHandler(recipes).AddRecipe)
	httpapi.Handle(mux, "/api/recipes/update", updaterecipe.NewHandler(recipes).UpdateRecipe)
	httpapi.Handle(mux, "/api/recipes/delete", deleterecipe.NewHandler(recipes).DeleteRecipe)
	httpapi.Handle(mux, "/api/categories/list", listcategories.NewHandler(categories).ListCategories)
	httpapi.Handle(mux, "/api/categories/add", addcategory.NewHandler(categories).AddCategory)
	httpapi.Handle(mux, "/api/categories/suggest", suggestcategory.NewHandler(categories, conf.Suggestion.Language).SuggestCategory)
	httpapi.Handle(mux, "/api/comments/add", addcomment.NewHandler(comments).AddComment)
	httpapi.Handle(mux, "/api/auth/signup", signup.NewHandler(fbAuth, profiles, resolver).SignUp)
	httpapi.Handle(mux, "/api/auth/ensureprofile", ensureprofile.NewHandler(profiles, resolver).EnsureProfile)
	httpapi.Handle(mux, "/api/auth/me", currentuser.NewHandler().CurrentUser)

	if err := server.Start(ctx, s); err != nil {
		return fmt.Errorf("main: starting server: %w", err)
	}
	return nil
}

// seedCategories creates the default categories for a fresh deployment.
// Existing names are left alone; other failures only log since the store
// may not be reachable during local development.
func seedCategories(ctx context.Context, categories *service.Categories) {
	for _, name := range lutongdb.SeedCategoryNames {
		if _, err := categories.Add(ctx, name); err != nil && !errors.Is(err, errs.ErrAlreadyExists) {
			slog.WarnContext(ctx, "main: seeding category", "name", name, "error", err)
		}
	}
}
