package handlers

import (
	"net/http"
	"strconv"
	"strings"

	applog "pedietcalc/internal/log"
	"pedietcalc/internal/recipe"
	"pedietcalc/internal/views/pages"
)

const ingredientsPath = "/recipe/ingredients"

// Restore seeds the working recipe from the page's address-bar fragment. The
// calculator page calls it once on load.
func Restore(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	loc := newHTMXLocation(w, r)
	c := openCalculator(r, loc)
	saveCalculator(r, c)
	applog.Debug(r.Context(), "recipe restored", "rows", len(c.Ingredients()), "named", c.Name() != "")
	renderWorkspace(w, r, loc, c)
}

// IngredientResource handles adding, editing and removing ingredient rows.
//
//	POST   /recipe/ingredients            add a row
//	POST   /recipe/ingredients/{id}       set one field (form: field, value)
//	PUT    /recipe/ingredients/{id}       same as POST
//	DELETE /recipe/ingredients/{id}       remove a row
//	POST   /recipe/ingredients/{id}/remove
func IngredientResource(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, ingredientsPath)
	path = strings.Trim(path, "/")

	if path == "" {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		addIngredient(w, r)
		return
	}

	idPart, action, _ := strings.Cut(path, "/")
	id, err := strconv.Atoi(idPart)
	if err != nil || id < 0 {
		applog.Debug(r.Context(), "invalid ingredient identifier", "identifier", idPart)
		http.NotFound(w, r)
		return
	}

	switch action {
	case "":
		switch r.Method {
		case http.MethodPost, http.MethodPut:
			updateIngredient(w, r, id)
		case http.MethodDelete:
			removeIngredient(w, r, id)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	case "remove":
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		removeIngredient(w, r, id)
	default:
		http.NotFound(w, r)
	}
}

func addIngredient(w http.ResponseWriter, r *http.Request) {
	loc := newHTMXLocation(w, r)
	c := loadCalculator(r, loc)
	item := c.AddIngredient()
	saveCalculator(r, c)
	applog.Debug(r.Context(), "ingredient added", "id", item.ID)
	renderWorkspace(w, r, loc, c)
}

func updateIngredient(w http.ResponseWriter, r *http.Request, id int) {
	if err := r.ParseForm(); err != nil {
		applog.Debug(r.Context(), "failed to parse ingredient form", "error", err)
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}
	field, ok := recipe.ParseField(r.FormValue("field"))
	if !ok {
		applog.Debug(r.Context(), "unknown ingredient field", "field", r.FormValue("field"))
		http.Error(w, "unknown field", http.StatusBadRequest)
		return
	}

	loc := newHTMXLocation(w, r)
	c := loadCalculator(r, loc)
	if !c.SetField(id, field, r.FormValue("value")) {
		// The row is gone, so the page is stale: redraw the whole workspace.
		applog.Debug(r.Context(), "update for missing ingredient ignored", "id", id)
		w.Header().Set("HX-Retarget", "#"+pages.WorkspaceID)
		w.Header().Set("HX-Reswap", "outerHTML")
		renderWorkspace(w, r, loc, c)
		return
	}
	saveCalculator(r, c)

	row, _ := c.Row(id)
	renderComponent(w, r, pages.FieldUpdate(row, c.Totals(), c.Ratio(), shareLinkFor(r, loc, c)))
}

func removeIngredient(w http.ResponseWriter, r *http.Request, id int) {
	loc := newHTMXLocation(w, r)
	c := loadCalculator(r, loc)
	if c.RemoveIngredient(id) {
		saveCalculator(r, c)
		applog.Debug(r.Context(), "ingredient removed", "id", id)
	} else {
		applog.Debug(r.Context(), "remove for missing ingredient ignored", "id", id)
	}
	renderWorkspace(w, r, loc, c)
}

// UpdateName stores the recipe name and refreshes the share link.
func UpdateName(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	loc := newHTMXLocation(w, r)
	c := loadCalculator(r, loc)
	c.SetName(r.FormValue("name"))
	saveCalculator(r, c)
	renderComponent(w, r, pages.SharePanel(shareLinkFor(r, loc, c), true))
}
