package document

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/vam-insurance/insurance-api/internal/database"
)

var ErrNotFound = errors.New("document not found")

// listLimit caps the document listing; the dashboard only shows recent uploads.
const listLimit = 50

// Repository handles document reads. Writes happen in the upload pipeline.
type Repository struct {
	db *bun.DB
}

func NewRepository(db *bun.DB) *Repository {
	return &Repository{db: db}
}

// List returns the newest documents first, capped at 50.
func (r *Repository) List(ctx context.Context) ([]*Document, error) {
	var dbDocs []*database.Document
	err := r.db.NewSelect().
		Model(&dbDocs).
		Order("created_at DESC").
		Limit(listLimit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	docs := make([]*Document, 0, len(dbDocs))
	for _, dbDoc := range dbDocs {
		docs = append(docs, mapDBDocumentToModel(dbDoc))
	}
	return docs, nil
}

// GetByID retrieves a document by ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*Document, error) {
	dbDoc := new(database.Document)
	err := r.db.NewSelect().
		Model(dbDoc).
		Where("id = ?", id).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	return mapDBDocumentToModel(dbDoc), nil
}

func mapDBDocumentToModel(dbd *database.Document) *Document {
	return &Document{
		ID:        dbd.ID,
		Filename:  dbd.Filename,
		FileType:  dbd.FileType,
		FileSize:  dbd.FileSize,
		Status:    dbd.Status,
		CreatedAt: dbd.CreatedAt,
		UpdatedAt: dbd.UpdatedAt,
	}
}
