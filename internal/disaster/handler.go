package disaster

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/vam-insurance/insurance-api/internal/httputil"
	"github.com/vam-insurance/insurance-api/internal/logging"
)

// Store is the slice of the repository the handlers need.
type Store interface {
	Create(ctx context.Context, loc NewLocation) (*Location, error)
	List(ctx context.Context) ([]*Location, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Location, error)
}

// Handler serves disaster location endpoints.
type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// CreateRequest is the POST /disaster-locations body. Coordinates are
// pointers so a missing field is distinguishable from zero.
type CreateRequest struct {
	Province     string   `json:"province"`
	District     *string  `json:"district"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	DisasterType string   `json:"disaster_type"`
}

// List handles GET /disaster-locations
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	locations, err := h.store.List(r.Context())
	if err != nil {
		logger.Error("failed to list disaster locations", "error", err.Error())
		httputil.RespondError(w, "Failed to fetch disaster locations", http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, locations, http.StatusOK)
}

// Create handles POST /disaster-locations
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondError(w, "Province, latitude, and longitude are required", http.StatusBadRequest)
		return
	}

	if req.Province == "" || req.Latitude == nil || req.Longitude == nil {
		httputil.RespondError(w, "Province, latitude, and longitude are required", http.StatusBadRequest)
		return
	}

	location, err := h.store.Create(r.Context(), NewLocation{
		Province:     req.Province,
		District:     req.District,
		Latitude:     *req.Latitude,
		Longitude:    *req.Longitude,
		DisasterType: req.DisasterType,
	})
	if err != nil {
		logger.Error("failed to create disaster location", "error", err.Error())
		httputil.RespondError(w, "Failed to create location", http.StatusInternalServerError)
		return
	}

	logger.Info("disaster location created", "id", location.ID, "province", location.Province)

	httputil.RespondJSON(w, location, http.StatusCreated)
}

// Get handles GET /disaster-locations/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		// Malformed ids cannot name a row; same answer as a missing one.
		httputil.RespondError(w, "Location not found", http.StatusNotFound)
		return
	}

	location, err := h.store.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httputil.RespondError(w, "Location not found", http.StatusNotFound)
			return
		}
		logger.Error("failed to fetch disaster location", "id", id, "error", err.Error())
		httputil.RespondError(w, "Failed to fetch location", http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, location, http.StatusOK)
}
