package entities

// City is the joined city row a route points at. Image is the optional
// marketing photo used to enrich generated airports.
type City struct {
	ID          string  `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	CountryCode string  `db:"country_code" json:"countryCode"`
	Image       *string `db:"image" json:"image,omitempty"`
}
