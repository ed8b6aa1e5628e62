package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/pfjetdev/pfjet-sub000/internal/constants"
	"github.com/pfjetdev/pfjet-sub000/internal/models/entities"
)

type AircraftRepository struct {
	db *sqlx.DB
}

func NewAircraftRepository(db *sqlx.DB) *AircraftRepository {
	return &AircraftRepository{db}
}

// ListAircraft returns the whole aircraft catalog. The table is small
// (tens of rows) and read-only from this path.
func (r *AircraftRepository) ListAircraft(ctx context.Context) ([]entities.Aircraft, error) {
	var aircraft []entities.Aircraft
	if err := r.db.SelectContext(ctx, &aircraft, constants.GetAllAircraft); err != nil {
		return nil, err
	}
	return aircraft, nil
}
