package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/pfjetdev/pfjet-sub000/internal/constants"
	"github.com/pfjetdev/pfjet-sub000/internal/models/entities"
)

type RouteRepository struct {
	db *sqlx.DB
}

func NewRouteRepository(db *sqlx.DB) *RouteRepository {
	return &RouteRepository{db}
}

// routeRow is the flat scan target for the route/city join.
type routeRow struct {
	ID               string   `db:"id"`
	FromCityID       string   `db:"from_city_id"`
	ToCityID         string   `db:"to_city_id"`
	AircraftCategory string   `db:"aircraft_category"`
	DistanceNM       *float64 `db:"distance_nm"`
	Duration         string   `db:"duration"`
	IsPopular        bool     `db:"is_popular"`

	FromCityRowID       string  `db:"from_city_row_id"`
	FromCityName        string  `db:"from_city_name"`
	FromCityCountryCode string  `db:"from_city_country_code"`
	FromCityImage       *string `db:"from_city_image"`

	ToCityRowID       string  `db:"to_city_row_id"`
	ToCityName        string  `db:"to_city_name"`
	ToCityCountryCode string  `db:"to_city_country_code"`
	ToCityImage       *string `db:"to_city_image"`
}

// ListRoutes returns up to limit routes with both city rows joined, in
// stable fetch order. Order matters downstream: the synthesis loop's
// Nth route consumes the Nth draws of the day's PRNG stream.
func (r *RouteRepository) ListRoutes(ctx context.Context, limit int) ([]entities.Route, error) {
	var rows []routeRow
	if err := r.db.SelectContext(ctx, &rows, constants.GetRoutesWithCities, limit); err != nil {
		return nil, err
	}

	routes := make([]entities.Route, 0, len(rows))
	for _, row := range rows {
		fromCity := &entities.City{
			ID:          row.FromCityRowID,
			Name:        row.FromCityName,
			CountryCode: row.FromCityCountryCode,
			Image:       row.FromCityImage,
		}
		toCity := &entities.City{
			ID:          row.ToCityRowID,
			Name:        row.ToCityName,
			CountryCode: row.ToCityCountryCode,
			Image:       row.ToCityImage,
		}
		routes = append(routes, entities.Route{
			ID:               row.ID,
			FromCityID:       row.FromCityID,
			ToCityID:         row.ToCityID,
			AircraftCategory: row.AircraftCategory,
			DistanceNM:       row.DistanceNM,
			Duration:         row.Duration,
			IsPopular:        row.IsPopular,
			FromCity:         fromCity,
			ToCity:           toCity,
		})
	}
	return routes, nil
}
