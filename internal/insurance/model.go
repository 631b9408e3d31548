package insurance

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// StatusPending is the only application status this service assigns; review
// transitions happen in the back office.
const StatusPending = "pending"

// Application is a submitted insurance application. Fields carries whatever
// the applicant submitted, untouched.
type Application struct {
	ID        uuid.UUID
	Fields    map[string]any
	Status    string
	CreatedAt time.Time
}

// MarshalJSON flattens the submitted fields into the top level of the object,
// the shape the frontend expects. Reserved keys always win over submitted
// ones.
func (a Application) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(a.Fields)+3)
	for k, v := range a.Fields {
		out[k] = v
	}
	out["id"] = a.ID
	out["status"] = a.Status
	out["created_at"] = a.CreatedAt

	return json.Marshal(out)
}

// Package is a catalogue entry for an insurance product.
type Package struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       int64    `json:"price"`
	Coverage    string   `json:"coverage"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
}
