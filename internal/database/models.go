package database

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Database models. Repositories map these to their package's domain model so
// bun tags never leak past the persistence layer.

type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID           uuid.UUID `bun:"id,pk,type:uuid"`
	Email        string    `bun:"email,notnull,unique"`
	PasswordHash string    `bun:"password_hash,notnull"`
	FullName     *string   `bun:"full_name"`
	CreatedAt    time.Time `bun:"created_at,notnull"`
}

type DisasterLocation struct {
	bun.BaseModel `bun:"table:disaster_locations,alias:dl"`

	ID           uuid.UUID       `bun:"id,pk,type:uuid"`
	Province     string          `bun:"province,notnull"`
	District     *string         `bun:"district"`
	Latitude     float64         `bun:"latitude,notnull"`
	Longitude    float64         `bun:"longitude,notnull"`
	DisasterType string          `bun:"disaster_type,notnull"`
	Status       string          `bun:"status,notnull"`
	Severity     string          `bun:"severity,notnull"`
	MarkerColor  string          `bun:"marker_color,notnull"`
	WeatherInfo  json.RawMessage `bun:"weather_info,type:jsonb"`
	LastUpdated  time.Time       `bun:"last_updated,notnull"`
}

type Document struct {
	bun.BaseModel `bun:"table:documents,alias:d"`

	ID        uuid.UUID `bun:"id,pk,type:uuid"`
	Filename  string    `bun:"filename,notnull"`
	FileType  string    `bun:"file_type,notnull"`
	FileSize  int64     `bun:"file_size,notnull"`
	Status    string    `bun:"status,notnull"`
	CreatedAt time.Time `bun:"created_at,notnull"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}

type InsuranceApplication struct {
	bun.BaseModel `bun:"table:insurance_applications,alias:ia"`

	ID        uuid.UUID       `bun:"id,pk,type:uuid"`
	Fields    json.RawMessage `bun:"fields,type:jsonb"`
	Status    string          `bun:"status,notnull"`
	CreatedAt time.Time       `bun:"created_at,notnull"`
}
