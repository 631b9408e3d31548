package insurance

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/vam-insurance/insurance-api/internal/database"
)

var ErrNotFound = errors.New("application not found")

// Repository persists insurance applications.
type Repository struct {
	db *bun.DB
}

func NewRepository(db *bun.DB) *Repository {
	return &Repository{db: db}
}

// Create stores a new application in pending state and returns the persisted
// row, re-read from the store.
func (r *Repository) Create(ctx context.Context, fields map[string]any) (*Application, error) {
	rawFields, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to encode application fields: %w", err)
	}

	dbApp := &database.InsuranceApplication{
		ID:        uuid.New(),
		Fields:    rawFields,
		Status:    StatusPending,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := r.db.NewInsert().Model(dbApp).Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	return r.GetByID(ctx, dbApp.ID)
}

// GetByID retrieves an application by ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*Application, error) {
	dbApp := new(database.InsuranceApplication)
	err := r.db.NewSelect().
		Model(dbApp).
		Where("id = ?", id).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}

	return mapDBApplicationToModel(dbApp)
}

func mapDBApplicationToModel(dba *database.InsuranceApplication) (*Application, error) {
	fields := make(map[string]any)
	if len(dba.Fields) > 0 {
		if err := json.Unmarshal(dba.Fields, &fields); err != nil {
			return nil, fmt.Errorf("failed to decode application fields: %w", err)
		}
	}

	return &Application{
		ID:        dba.ID,
		Fields:    fields,
		Status:    dba.Status,
		CreatedAt: dba.CreatedAt,
	}, nil
}
