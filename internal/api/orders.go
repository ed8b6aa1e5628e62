package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/pfjetdev/pfjet-sub000/internal/constants"
	"github.com/pfjetdev/pfjet-sub000/internal/db/repositories"
	"github.com/pfjetdev/pfjet-sub000/internal/generator"
	"github.com/pfjetdev/pfjet-sub000/internal/metrics"
	"github.com/pfjetdev/pfjet-sub000/internal/models/dtos"
	gormModels "github.com/pfjetdev/pfjet-sub000/internal/models/gorm"
	"github.com/pfjetdev/pfjet-sub000/internal/services"
)

type createOrderRequest struct {
	ListingID  string `json:"listingId"`
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Passengers int    `json:"passengers"`
	Message    string `json:"message"`
}

// CreateOrderHandler handles POST /api/v1/orders. The listing id is
// validated by regenerating the listing it points at, so inquiries can
// only be placed against offers the catalog actually produces.
func CreateOrderHandler(
	orders *repositories.CharterOrderRepository,
	emptyLegs *services.EmptyLegsService,
	jetShares *services.JetSharingService,
	metricsReg *metrics.MetricsRegistry,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.ListingID == "" || req.FullName == "" || req.Email == "" {
			respondWithError(w, http.StatusBadRequest, "listingId, fullName and email are required")
			return
		}

		kind, listing := resolveListing(r.Context(), req.ListingID, emptyLegs, jetShares)
		if listing == nil {
			respondWithError(w, http.StatusNotFound, "listing not found")
			return
		}

		passengers := req.Passengers
		if passengers < 1 {
			passengers = 1
		}

		order := &gormModels.CharterOrder{
			ListingID:   req.ListingID,
			ListingKind: string(kind),
			FullName:    strings.TrimSpace(req.FullName),
			Email:       strings.TrimSpace(req.Email),
			Phone:       strings.TrimSpace(req.Phone),
			Passengers:  passengers,
			Message:     req.Message,
		}
		if err := orders.Create(r.Context(), order); err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to create order")
			return
		}

		if metricsReg != nil {
			metricsReg.OrdersCreatedTotal.Inc()
		}
		respondWithSuccess(w, http.StatusCreated, order)
	}
}

func resolveListing(
	ctx context.Context,
	id string,
	emptyLegs *services.EmptyLegsService,
	jetShares *services.JetSharingService,
) (constants.ListingKind, *dtos.FlightListing) {
	if strings.HasPrefix(id, generator.EmptyLegPrefix+"-") {
		return constants.ListingKindEmptyLeg, emptyLegs.GetByID(ctx, id)
	}
	if strings.HasPrefix(id, generator.JetSharingPrefix+"-") {
		return constants.ListingKindJetSharing, jetShares.GetByID(ctx, id)
	}
	return "", nil
}

// Admin order handlers.

// AdminListOrdersHandler handles GET /api/v1/admin/orders
func AdminListOrdersHandler(orders *repositories.CharterOrderRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := orders.List(r.Context(), r.URL.Query().Get("status"))
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to list orders")
			return
		}
		respondWithSuccess(w, http.StatusOK, &list)
	}
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

// AdminUpdateOrderStatusHandler handles PUT /api/v1/admin/orders/{id}
func AdminUpdateOrderStatusHandler(orders *repositories.CharterOrderRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var req updateOrderStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if err := orders.UpdateStatus(r.Context(), id, req.Status); err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		updated, err := orders.FindByID(r.Context(), id)
		if err != nil || updated == nil {
			respondWithError(w, http.StatusNotFound, "order not found")
			return
		}
		respondWithSuccess(w, http.StatusOK, updated)
	}
}

// AdminDeleteOrderHandler handles DELETE /api/v1/admin/orders/{id}
func AdminDeleteOrderHandler(orders *repositories.CharterOrderRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := orders.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to delete order")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
