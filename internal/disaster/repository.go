package disaster

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/vam-insurance/insurance-api/internal/database"
	"github.com/vam-insurance/insurance-api/internal/weather"
)

var ErrNotFound = errors.New("location not found")

// Repository handles disaster location persistence
type Repository struct {
	db *bun.DB
}

func NewRepository(db *bun.DB) *Repository {
	return &Repository{db: db}
}

// NewLocation are the caller-supplied fields for a new location.
// Everything else is defaulted at creation.
type NewLocation struct {
	Province     string
	District     *string
	Latitude     float64
	Longitude    float64
	DisasterType string
}

// Create inserts a location with stable defaults and returns the persisted
// row, re-read from the store.
func (r *Repository) Create(ctx context.Context, loc NewLocation) (*Location, error) {
	disasterType := loc.DisasterType
	if disasterType == "" {
		disasterType = "unknown"
	}

	dbLoc := &database.DisasterLocation{
		ID:           uuid.New(),
		Province:     loc.Province,
		District:     loc.District,
		Latitude:     loc.Latitude,
		Longitude:    loc.Longitude,
		DisasterType: disasterType,
		Status:       string(weather.StatusStable),
		Severity:     string(weather.SeverityLow),
		MarkerColor:  weather.MarkerColorFor(weather.StatusStable),
		LastUpdated:  time.Now().UTC(),
	}

	if _, err := r.db.NewInsert().Model(dbLoc).Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to create disaster location: %w", err)
	}

	return r.GetByID(ctx, dbLoc.ID)
}

// List returns all locations ordered by province. No rows is an empty slice,
// not an error.
func (r *Repository) List(ctx context.Context) ([]*Location, error) {
	var dbLocs []*database.DisasterLocation
	err := r.db.NewSelect().
		Model(&dbLocs).
		Order("province ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list disaster locations: %w", err)
	}

	locations := make([]*Location, 0, len(dbLocs))
	for _, dbLoc := range dbLocs {
		locations = append(locations, mapDBLocationToModel(dbLoc))
	}
	return locations, nil
}

// GetByID retrieves a location by ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*Location, error) {
	dbLoc := new(database.DisasterLocation)
	err := r.db.NewSelect().
		Model(dbLoc).
		Where("id = ?", id).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get disaster location: %w", err)
	}

	return mapDBLocationToModel(dbLoc), nil
}

func mapDBLocationToModel(dbl *database.DisasterLocation) *Location {
	return &Location{
		ID:           dbl.ID,
		Province:     dbl.Province,
		District:     dbl.District,
		Latitude:     dbl.Latitude,
		Longitude:    dbl.Longitude,
		DisasterType: dbl.DisasterType,
		Status:       weather.Status(dbl.Status),
		Severity:     weather.Severity(dbl.Severity),
		MarkerColor:  dbl.MarkerColor,
		WeatherInfo:  dbl.WeatherInfo,
		LastUpdated:  dbl.LastUpdated,
	}
}
