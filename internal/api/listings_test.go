package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pfjetdev/pfjet-sub000/internal/common"
	"github.com/pfjetdev/pfjet-sub000/internal/models/dtos"
	"github.com/pfjetdev/pfjet-sub000/internal/models/entities"
	"github.com/pfjetdev/pfjet-sub000/internal/services"
)

type stubRouteReader struct{ routes []entities.Route }

func (s *stubRouteReader) ListRoutes(ctx context.Context, limit int) ([]entities.Route, error) {
	return s.routes, nil
}

type stubAircraftReader struct{ aircraft []entities.Aircraft }

func (s *stubAircraftReader) ListAircraft(ctx context.Context) ([]entities.Aircraft, error) {
	return s.aircraft, nil
}

type stubCityImageReader struct{}

func (s *stubCityImageReader) ListCityImages(ctx context.Context) (map[string]string, error) {
	return map[string]string{}, nil
}

func stubCatalog(routes []entities.Route) *services.CatalogService {
	aircraft := []entities.Aircraft{
		{ID: "ac-1", Name: "Citation CJ3", Slug: "citation-cj3", Category: "Light",
			CategorySlug: "light", Passengers: "7 passengers", Range: "2,040 nm", Speed: "450 mph"},
		{ID: "ac-2", Name: "Gulfstream G550", Slug: "gulfstream-g550", Category: "Heavy",
			CategorySlug: "heavy", Passengers: "14 passengers", Range: "6,750 nm", Speed: "562 mph"},
	}
	return services.NewCatalogService(
		&stubRouteReader{routes: routes},
		&stubAircraftReader{aircraft: aircraft},
		&stubCityImageReader{},
		common.NewCacheService(60, 600),
	)
}

func stubRoutes() []entities.Route {
	return []entities.Route{
		{ID: "r1", AircraftCategory: "Light",
			FromCity: &entities.City{ID: "c1", Name: "New York", CountryCode: "US"},
			ToCity:   &entities.City{ID: "c2", Name: "Miami", CountryCode: "US"}},
		{ID: "r2", AircraftCategory: "Heavy",
			FromCity: &entities.City{ID: "c3", Name: "Los Angeles", CountryCode: "US"},
			ToCity:   &entities.City{ID: "c4", Name: "Aspen", CountryCode: "US"}},
	}
}

type listingsResponse struct {
	Status string               `json:"status"`
	Data   []dtos.FlightListing `json:"data"`
	Error  string               `json:"error"`
}

type listingResponse struct {
	Status string              `json:"status"`
	Data   *dtos.FlightListing `json:"data"`
	Error  string              `json:"error"`
}

func TestEmptyLegsHandler(t *testing.T) {
	svc := services.NewEmptyLegsService(stubCatalog(stubRoutes()))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/empty-legs", nil)
	rec := httptest.NewRecorder()
	EmptyLegsHandler(svc)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp listingsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Len(t, resp.Data, 2)
}

func TestEmptyLegsHandlerFilterEmptyResultIsOK(t *testing.T) {
	svc := services.NewEmptyLegsService(stubCatalog(stubRoutes()))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/empty-legs?priceMax=1", nil)
	rec := httptest.NewRecorder()
	EmptyLegsHandler(svc)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp listingsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Empty(t, resp.Data)
}

func TestEmptyLegsHandlerNoRoutesIs503(t *testing.T) {
	svc := services.NewEmptyLegsService(stubCatalog(nil))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/empty-legs", nil)
	rec := httptest.NewRecorder()
	EmptyLegsHandler(svc)(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp listingsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
}

func TestEmptyLegByIDHandler(t *testing.T) {
	svc := services.NewEmptyLegsService(stubCatalog(stubRoutes()))

	listings, err := svc.TodaysListings(context.Background(), dtos.ListingFilter{})
	require.NoError(t, err)
	require.NotEmpty(t, listings)

	router := chi.NewRouter()
	router.Get("/api/v1/empty-legs/{id}", EmptyLegByIDHandler(svc))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/empty-legs/"+listings[0].ID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp listingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Data)
	assert.Equal(t, listings[0].ID, resp.Data.ID)
}

func TestEmptyLegByIDHandlerNotFound(t *testing.T) {
	svc := services.NewEmptyLegsService(stubCatalog(stubRoutes()))

	router := chi.NewRouter()
	router.Get("/api/v1/empty-legs/{id}", EmptyLegByIDHandler(svc))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/empty-legs/el-20250615-ghost", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestJetSharingHandler(t *testing.T) {
	svc := services.NewJetSharingService(stubCatalog(stubRoutes()))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/jet-sharing?minSeats=1", nil)
	rec := httptest.NewRecorder()
	JetSharingHandler(svc)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp listingsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	require.Len(t, resp.Data, 2)
	for _, l := range resp.Data {
		assert.Positive(t, l.Pricing.PricePerSeat)
		assert.GreaterOrEqual(t, l.AvailableSeats, 1)
	}
}

func TestFilterFromQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/empty-legs?from=new+york&to=miami&dateFrom=2025-06-17&priceMin=1000&priceMax=20000&minSeats=3&categories=Light,Heavy", nil)

	f := filterFromQuery(req)
	assert.Equal(t, "new york", f.From)
	assert.Equal(t, "miami", f.To)
	assert.Equal(t, "2025-06-17", f.DateFrom)
	require.NotNil(t, f.PriceMin)
	assert.Equal(t, 1000.0, *f.PriceMin)
	require.NotNil(t, f.PriceMax)
	assert.Equal(t, 20000.0, *f.PriceMax)
	require.NotNil(t, f.MinSeats)
	assert.Equal(t, 3, *f.MinSeats)
	assert.Equal(t, []string{"Light", "Heavy"}, f.Categories)
}

func TestFilterFromQueryIgnoresUnparseable(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/empty-legs?priceMax=expensive&minSeats=many", nil)

	f := filterFromQuery(req)
	assert.Nil(t, f.PriceMax)
	assert.Nil(t, f.MinSeats)
}
