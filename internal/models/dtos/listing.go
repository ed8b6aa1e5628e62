package dtos

// Airport is reference data resolved at generation time from the static
// city table, enriched with a marketing image and an IANA timezone.
// Never persisted.
type Airport struct {
	City        string  `json:"city"`
	Code        string  `json:"code"`
	Country     string  `json:"country"`
	CountryCode string  `json:"countryCode"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Timezone    string  `json:"timezone"`
	Image       string  `json:"image,omitempty"`
}

// AircraftSummary is the slice of an aircraft record a listing embeds.
type AircraftSummary struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Category     string `json:"category"`
	CategorySlug string `json:"categorySlug"`
	Image        string `json:"image,omitempty"`
	Passengers   string `json:"passengers"`
	Range        string `json:"range"`
	Speed        string `json:"speed"`
}

// ListingPricing carries either a whole-aircraft total (empty legs) or
// a per-seat price (jet sharing), never both.
type ListingPricing struct {
	TotalPrice   float64 `json:"totalPrice,omitempty"`
	PricePerSeat float64 `json:"pricePerSeat,omitempty"`
	Currency     string  `json:"currency"`
}

// FlightListing is one synthesized, ephemeral flight offer. It is a
// pure function of (route, aircraft pool, day seed, route ordinal) and
// is regenerated on every request; the ID is the only handle that
// looks persistent.
type FlightListing struct {
	ID             string          `json:"id"`
	From           Airport         `json:"from"`
	To             Airport         `json:"to"`
	DepartureDate  string          `json:"departureDate"` // 2006-01-02
	DepartureTime  string          `json:"departureTime"` // HH:MM
	ArrivalTime    string          `json:"arrivalTime"`
	Aircraft       AircraftSummary `json:"aircraft"`
	FlightDuration string          `json:"flightDuration"`
	Pricing        ListingPricing  `json:"pricing"`
	Status         string          `json:"status"`

	// Jet-sharing only.
	TotalSeats     int  `json:"totalSeats,omitempty"`
	AvailableSeats int  `json:"availableSeats,omitempty"`
	IsFeatured     bool `json:"isFeatured,omitempty"`
}

// ListingFilter is the AND-combined search filter bag. Zero values
// (and nil pointers) mean "no constraint" for that dimension.
type ListingFilter struct {
	From       string   `json:"from,omitempty"`
	To         string   `json:"to,omitempty"`
	DateFrom   string   `json:"dateFrom,omitempty"`
	DateTo     string   `json:"dateTo,omitempty"`
	PriceMin   *float64 `json:"priceMin,omitempty"`
	PriceMax   *float64 `json:"priceMax,omitempty"`
	MinSeats   *int     `json:"minSeats,omitempty"`
	Category   string   `json:"category,omitempty"`
	Categories []string `json:"categories,omitempty"`
}
