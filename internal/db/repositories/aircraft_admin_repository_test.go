package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	gormlib "gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pfjetdev/pfjet-sub000/internal/models/gorm"
)

func setupAircraftDB(t *testing.T) *gormlib.DB {
	t.Helper()

	db, err := gormlib.Open(sqlite.Open(":memory:"), &gormlib.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&gorm.Aircraft{}))
	return db
}

func sampleGormAircraft(name, slug string) *gorm.Aircraft {
	return &gorm.Aircraft{
		Name:         name,
		Slug:         slug,
		Category:     "Light",
		CategorySlug: "light",
		Passengers:   "7 passengers",
		Range:        "2,040 nm",
		Speed:        "450 mph",
	}
}

func TestAircraftAdminCreateAndFind(t *testing.T) {
	repo := NewAircraftAdminRepository(setupAircraftDB(t))
	ctx := context.Background()

	aircraft := sampleGormAircraft("Citation CJ3", "citation-cj3")
	require.NoError(t, repo.Create(ctx, aircraft))
	assert.NotEmpty(t, aircraft.ID)

	got, err := repo.FindByID(ctx, aircraft.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Citation CJ3", got.Name)
	assert.Equal(t, "450 mph", got.Speed)
}

func TestAircraftAdminFindMissing(t *testing.T) {
	repo := NewAircraftAdminRepository(setupAircraftDB(t))

	got, err := repo.FindByID(context.Background(), "no-such-id")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAircraftAdminUpdate(t *testing.T) {
	repo := NewAircraftAdminRepository(setupAircraftDB(t))
	ctx := context.Background()

	aircraft := sampleGormAircraft("Citation CJ3", "citation-cj3")
	require.NoError(t, repo.Create(ctx, aircraft))

	aircraft.Speed = "478 mph"
	require.NoError(t, repo.Update(ctx, aircraft))

	got, err := repo.FindByID(ctx, aircraft.ID)
	require.NoError(t, err)
	assert.Equal(t, "478 mph", got.Speed)
}

func TestAircraftAdminListOrderedByName(t *testing.T) {
	repo := NewAircraftAdminRepository(setupAircraftDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, sampleGormAircraft("Phenom 300", "phenom-300")))
	require.NoError(t, repo.Create(ctx, sampleGormAircraft("Citation CJ3", "citation-cj3")))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Citation CJ3", got[0].Name)
	assert.Equal(t, "Phenom 300", got[1].Name)
}

func TestAircraftAdminDelete(t *testing.T) {
	repo := NewAircraftAdminRepository(setupAircraftDB(t))
	ctx := context.Background()

	aircraft := sampleGormAircraft("Citation CJ3", "citation-cj3")
	require.NoError(t, repo.Create(ctx, aircraft))
	require.NoError(t, repo.Delete(ctx, aircraft.ID))

	got, err := repo.FindByID(ctx, aircraft.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
