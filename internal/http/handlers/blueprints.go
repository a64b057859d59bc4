package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"vibecraft/internal/domain"
	"vibecraft/internal/domain/jsoncfg"
)

const maxLibraryLimit = 500

type libraryResponse struct {
	Items []domain.Blueprint `json:"items"`
}

func (a *App) BlueprintsCreate(w http.ResponseWriter, r *http.Request) {
	var req jsoncfg.ChoicesJSON
	if !a.decode(w, r, &req) {
		return
	}
	req.Normalize()
	if err := req.Validate(true); err != nil {
		a.fail(w, r, err)
		return
	}
	bp, err := a.Blueprints.Generate(r.Context(), req.Choices())
	if err != nil {
		a.fail(w, r, err)
		return
	}
	w.Header().Set("Location", "/v1/blueprints/"+bp.ID)
	a.json(w, http.StatusCreated, bp)
}

func (a *App) BlueprintsList(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			a.error(w, http.StatusBadRequest, "bad_request", "limit must be a non-negative integer")
			return
		}
		limit = min(n, maxLibraryLimit)
	}
	items, err := a.Blueprints.Library(r.Context(), limit)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, libraryResponse{Items: items})
}

func (a *App) BlueprintsGet(w http.ResponseWriter, r *http.Request) {
	bp, err := a.Blueprints.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, bp)
}

func (a *App) BlueprintsDelete(w http.ResponseWriter, r *http.Request) {
	if err := a.Blueprints.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		a.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *App) BlueprintsExport(w http.ResponseWriter, r *http.Request) {
	data, err := a.Blueprints.Export(r.Context())
	if err != nil {
		a.fail(w, r, err)
		return
	}
	name := fmt.Sprintf("vibecraft-library-%s.zip", time.Now().UTC().Format("20060102-150405"))
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
