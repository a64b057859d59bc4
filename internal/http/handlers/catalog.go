package handlers

import (
	"net/http"

	"vibecraft/internal/i18n"
	"vibecraft/internal/middleware"
)

// Catalog lists goals, moods, intents and categories in the request locale.
func (a *App) Catalog(w http.ResponseWriter, r *http.Request) {
	locale := middleware.LocaleFromContext(r.Context())
	a.json(w, http.StatusOK, i18n.LocalizeCatalog(locale))
}
