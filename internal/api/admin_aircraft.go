package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/pfjetdev/pfjet-sub000/internal/common"
	"github.com/pfjetdev/pfjet-sub000/internal/constants"
	"github.com/pfjetdev/pfjet-sub000/internal/db/repositories"
	gormModels "github.com/pfjetdev/pfjet-sub000/internal/models/gorm"
)

type aircraftRequest struct {
	Name         string  `json:"name"`
	Slug         string  `json:"slug"`
	Category     string  `json:"category"`
	CategorySlug string  `json:"categorySlug"`
	Image        *string `json:"image,omitempty"`
	Passengers   string  `json:"passengers"`
	Range        string  `json:"range"`
	Speed        string  `json:"speed"`
}

func (req *aircraftRequest) validate() string {
	if strings.TrimSpace(req.Name) == "" {
		return "name is required"
	}
	if strings.TrimSpace(req.Slug) == "" {
		return "slug is required"
	}
	if strings.TrimSpace(req.Category) == "" {
		return "category is required"
	}
	return ""
}

// invalidateCatalogCache drops the cached aircraft list after a write
// so the next synthesis run sees the change instead of waiting out the
// TTL.
func invalidateCatalogCache(cache common.CacheInterface) {
	cache.Delete(string(constants.CacheKeyAircraft))
}

// AdminListAircraftHandler handles GET /api/v1/admin/aircraft
func AdminListAircraftHandler(repo *repositories.AircraftAdminRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		aircraft, err := repo.List(r.Context())
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to list aircraft")
			return
		}
		respondWithSuccess(w, http.StatusOK, &aircraft)
	}
}

// AdminCreateAircraftHandler handles POST /api/v1/admin/aircraft
func AdminCreateAircraftHandler(repo *repositories.AircraftAdminRepository, cache common.CacheInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req aircraftRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if msg := req.validate(); msg != "" {
			respondWithError(w, http.StatusBadRequest, msg)
			return
		}

		aircraft := &gormModels.Aircraft{
			Name:         req.Name,
			Slug:         req.Slug,
			Category:     req.Category,
			CategorySlug: req.CategorySlug,
			Image:        req.Image,
			Passengers:   req.Passengers,
			Range:        req.Range,
			Speed:        req.Speed,
		}
		if err := repo.Create(r.Context(), aircraft); err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to create aircraft")
			return
		}

		invalidateCatalogCache(cache)
		respondWithSuccess(w, http.StatusCreated, aircraft)
	}
}

// AdminUpdateAircraftHandler handles PUT /api/v1/admin/aircraft/{id}
func AdminUpdateAircraftHandler(repo *repositories.AircraftAdminRepository, cache common.CacheInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		existing, err := repo.FindByID(r.Context(), id)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to load aircraft")
			return
		}
		if existing == nil {
			respondWithError(w, http.StatusNotFound, "aircraft not found")
			return
		}

		var req aircraftRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if msg := req.validate(); msg != "" {
			respondWithError(w, http.StatusBadRequest, msg)
			return
		}

		existing.Name = req.Name
		existing.Slug = req.Slug
		existing.Category = req.Category
		existing.CategorySlug = req.CategorySlug
		existing.Image = req.Image
		existing.Passengers = req.Passengers
		existing.Range = req.Range
		existing.Speed = req.Speed

		if err := repo.Update(r.Context(), existing); err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to update aircraft")
			return
		}

		invalidateCatalogCache(cache)
		respondWithSuccess(w, http.StatusOK, existing)
	}
}

// AdminDeleteAircraftHandler handles DELETE /api/v1/admin/aircraft/{id}
func AdminDeleteAircraftHandler(repo *repositories.AircraftAdminRepository, cache common.CacheInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to delete aircraft")
			return
		}
		invalidateCatalogCache(cache)
		w.WriteHeader(http.StatusNoContent)
	}
}
