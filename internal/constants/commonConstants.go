package constants

import "time"

type (
	APIStatus   string
	CachePrefix string
	ListingKind string
)

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	CacheKeyRoutes     CachePrefix = "CATALOG_ROUTES"
	CacheKeyAircraft   CachePrefix = "CATALOG_AIRCRAFT"
	CacheKeyCityImages CachePrefix = "CATALOG_CITY_IMAGES"

	ListingKindEmptyLeg   ListingKind = "empty_leg"
	ListingKindJetSharing ListingKind = "jet_sharing"

	// CatalogCacheTTL is the time-boxed revalidation window for the
	// route/aircraft/city fetches. A stale catalog may be served for
	// up to an hour before it is recomputed from the store.
	CatalogCacheTTL = 3600 * time.Second

	// DefaultRouteLimit bounds how many routes one synthesis run
	// considers.
	DefaultRouteLimit = 50
)

// Charter order statuses, in the order an inquiry moves through them.
const (
	OrderStatusNew       = "new"
	OrderStatusContacted = "contacted"
	OrderStatusConfirmed = "confirmed"
	OrderStatusCancelled = "cancelled"
)

// ValidOrderStatuses gates admin status updates.
var ValidOrderStatuses = map[string]struct{}{
	OrderStatusNew:       {},
	OrderStatusContacted: {},
	OrderStatusConfirmed: {},
	OrderStatusCancelled: {},
}
