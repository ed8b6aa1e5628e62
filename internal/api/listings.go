package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/pfjetdev/pfjet-sub000/internal/constants"
	"github.com/pfjetdev/pfjet-sub000/internal/models/dtos"
	"github.com/pfjetdev/pfjet-sub000/internal/services"
)

// filterFromQuery maps the search form's query string onto the filter
// bag. Absent or unparseable params simply do not constrain.
func filterFromQuery(r *http.Request) dtos.ListingFilter {
	q := r.URL.Query()
	f := dtos.ListingFilter{
		From:     q.Get("from"),
		To:       q.Get("to"),
		DateFrom: q.Get("dateFrom"),
		DateTo:   q.Get("dateTo"),
		Category: q.Get("category"),
	}

	if v, err := strconv.ParseFloat(q.Get("priceMin"), 64); err == nil {
		f.PriceMin = &v
	}
	if v, err := strconv.ParseFloat(q.Get("priceMax"), 64); err == nil {
		f.PriceMax = &v
	}
	if v, err := strconv.Atoi(q.Get("minSeats")); err == nil {
		f.MinSeats = &v
	}
	if cats := q.Get("categories"); cats != "" {
		f.Categories = strings.Split(cats, ",")
	}
	return f
}

func respondListings(w http.ResponseWriter, listings []dtos.FlightListing, err error) {
	if err != nil {
		// "No data at all" is a system failure, not an empty result.
		if errors.Is(err, constants.ErrNoRoutes) || errors.Is(err, constants.ErrNoAircraft) {
			respondWithError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		respondWithError(w, http.StatusInternalServerError, "failed to generate listings")
		return
	}
	respondWithSuccess(w, http.StatusOK, &listings)
}

// EmptyLegsHandler handles GET /api/v1/empty-legs
func EmptyLegsHandler(svc *services.EmptyLegsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listings, err := svc.TodaysListings(r.Context(), filterFromQuery(r))
		respondListings(w, listings, err)
	}
}

// EmptyLegByIDHandler handles GET /api/v1/empty-legs/{id}
func EmptyLegByIDHandler(svc *services.EmptyLegsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listing := svc.GetByID(r.Context(), chi.URLParam(r, "id"))
		if listing == nil {
			respondWithError(w, http.StatusNotFound, "listing not found")
			return
		}
		respondWithSuccess(w, http.StatusOK, listing)
	}
}

// JetSharingHandler handles GET /api/v1/jet-sharing
func JetSharingHandler(svc *services.JetSharingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listings, err := svc.TodaysListings(r.Context(), filterFromQuery(r))
		respondListings(w, listings, err)
	}
}

// JetShareByIDHandler handles GET /api/v1/jet-sharing/{id}
func JetShareByIDHandler(svc *services.JetSharingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listing := svc.GetByID(r.Context(), chi.URLParam(r, "id"))
		if listing == nil {
			respondWithError(w, http.StatusNotFound, "listing not found")
			return
		}
		respondWithSuccess(w, http.StatusOK, listing)
	}
}
