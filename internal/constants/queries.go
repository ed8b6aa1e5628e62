package constants

const (
	// Routes joined to both city rows. Column aliases match the flat
	// scan struct in the route repository.
	GetRoutesWithCities = `
	SELECT
		r.id,
		r.from_city_id,
		r.to_city_id,
		r.aircraft_category,
		r.distance_nm,
		r.duration,
		r.is_popular,
		fc.id           AS from_city_row_id,
		fc.name         AS from_city_name,
		fc.country_code AS from_city_country_code,
		fc.image        AS from_city_image,
		tc.id           AS to_city_row_id,
		tc.name         AS to_city_name,
		tc.country_code AS to_city_country_code,
		tc.image        AS to_city_image
	FROM routes r
	JOIN cities fc ON fc.id = r.from_city_id
	JOIN cities tc ON tc.id = r.to_city_id
	ORDER BY r.is_popular DESC, r.id
	LIMIT $1
	`

	GetAllAircraft = `
	SELECT id, name, slug, category, category_slug, image, passengers, "range", speed
	FROM aircraft
	ORDER BY name
	`

	GetCityImages = `
	SELECT name, image
	FROM cities
	WHERE image IS NOT NULL
	`
)
