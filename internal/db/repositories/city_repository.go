package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/pfjetdev/pfjet-sub000/internal/constants"
)

type CityRepository struct {
	db *sqlx.DB
}

func NewCityRepository(db *sqlx.DB) *CityRepository {
	return &CityRepository{db}
}

type cityImageRow struct {
	Name  string `db:"name"`
	Image string `db:"image"`
}

// ListCityImages returns lowercased city name -> image URL for every
// city that has a photo, used to enrich generated airports.
func (r *CityRepository) ListCityImages(ctx context.Context) (map[string]string, error) {
	var rows []cityImageRow
	if err := r.db.SelectContext(ctx, &rows, constants.GetCityImages); err != nil {
		return nil, err
	}

	images := make(map[string]string, len(rows))
	for _, row := range rows {
		images[strings.ToLower(strings.TrimSpace(row.Name))] = row.Image
	}
	return images, nil
}
