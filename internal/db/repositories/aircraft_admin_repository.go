package repositories

import (
	"context"

	"github.com/google/uuid"
	gormlib "gorm.io/gorm"

	"github.com/pfjetdev/pfjet-sub000/internal/models/gorm"
)

// AircraftAdminRepository is the GORM write path for the aircraft
// catalog. The generator only ever reads through the sqlx repository;
// admin CRUD goes through here.
type AircraftAdminRepository struct {
	db *gormlib.DB
}

func NewAircraftAdminRepository(db *gormlib.DB) *AircraftAdminRepository {
	return &AircraftAdminRepository{db: db}
}

// Create inserts a new aircraft, assigning the id in-process so the
// same code works on Postgres and the sqlite test database.
func (r *AircraftAdminRepository) Create(ctx context.Context, aircraft *gorm.Aircraft) error {
	if aircraft.ID == "" {
		aircraft.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(aircraft).Error
}

func (r *AircraftAdminRepository) Update(ctx context.Context, aircraft *gorm.Aircraft) error {
	return r.db.WithContext(ctx).Save(aircraft).Error
}

func (r *AircraftAdminRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&gorm.Aircraft{}, "id = ?", id).Error
}

func (r *AircraftAdminRepository) FindByID(ctx context.Context, id string) (*gorm.Aircraft, error) {
	var aircraft gorm.Aircraft
	err := r.db.WithContext(ctx).First(&aircraft, "id = ?", id).Error
	if err != nil {
		if err == gormlib.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &aircraft, nil
}

func (r *AircraftAdminRepository) List(ctx context.Context) ([]gorm.Aircraft, error) {
	var aircraft []gorm.Aircraft
	err := r.db.WithContext(ctx).Order("name").Find(&aircraft).Error
	return aircraft, err
}
