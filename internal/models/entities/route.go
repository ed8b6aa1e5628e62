package entities

// Route is a persisted city-pair + aircraft-category template. Its ID
// is the only durable key a generated listing carries; everything else
// about a listing is recomputed from this record on every request.
type Route struct {
	ID               string   `db:"id"`
	FromCityID       string   `db:"from_city_id"`
	ToCityID         string   `db:"to_city_id"`
	AircraftCategory string   `db:"aircraft_category"`
	DistanceNM       *float64 `db:"distance_nm"`
	Duration         string   `db:"duration"`
	IsPopular        bool     `db:"is_popular"`

	FromCity *City `db:"-"`
	ToCity   *City `db:"-"`
}
