package handlers

import (
	"encoding/gob"
	"strings"

	"github.com/alexedwards/scs/v2"
	"gorm.io/gorm"

	"pedietcalc/internal/recipe"
)

const (
	sessionRecipeKey = "recipe:state"
	sessionThemeKey  = "preferences:theme"
)

var (
	sessionManager *scs.SessionManager
	database       *gorm.DB
	publicBaseURL  string
)

func init() {
	gob.Register(recipe.State{})
}

// Configure installs the shared dependencies used by the HTTP handlers.
func Configure(sm *scs.SessionManager, db *gorm.DB) {
	sessionManager = sm
	database = db
}

// ConfigureSharing sets the base URL share links are built on when a request
// does not report the page it came from.
func ConfigureSharing(baseURL string) {
	publicBaseURL = strings.TrimSpace(baseURL)
}
