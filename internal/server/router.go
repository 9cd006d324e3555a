package server

import (
	"context"
	"net/http"

	"pedietcalc/internal/handlers"
	applog "pedietcalc/internal/log"
)

func newRouter(assetsDir string) http.Handler {
	mux := http.NewServeMux()
	applog.Debug(context.Background(), "registering http routes")
	mux.HandleFunc("/healthz", handlers.Health)
	applog.Debug(context.Background(), "route registered", "path", "/healthz")
	mux.HandleFunc("/recipe/restore", handlers.Restore)
	mux.HandleFunc("/recipe/ingredients", handlers.IngredientResource)
	mux.HandleFunc("/recipe/ingredients/", handlers.IngredientResource)
	mux.HandleFunc("/recipe/name", handlers.UpdateName)
	applog.Debug(context.Background(), "route registered", "path", "/recipe", "editing", true)
	mux.HandleFunc("/recipe/print", handlers.PrintRecipe)
	mux.HandleFunc("/recipe/summary", handlers.RecipeSummary)
	mux.HandleFunc("/recipe/summary.md", handlers.RecipeMarkdown)
	mux.HandleFunc("/recipe/export.xlsx", handlers.ExportWorkbook)
	applog.Debug(context.Background(), "route registered", "path", "/recipe", "reports", true)
	mux.HandleFunc("/preferences/theme", handlers.UpdatePreferences)
	applog.Debug(context.Background(), "route registered", "path", "/preferences/theme")
	mux.HandleFunc("/", handlers.Home)
	applog.Debug(context.Background(), "route registered", "path", "/")
	mux.Handle("/assets/", http.StripPrefix("/assets/", http.FileServer(http.Dir(assetsDir))))
	applog.Debug(context.Background(), "route registered", "path", "/assets/", "static", true)
	return mux
}
