package insurance

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/vam-insurance/insurance-api/internal/httputil"
	"github.com/vam-insurance/insurance-api/internal/logging"
)

// Store is the slice of the repository the handlers need.
type Store interface {
	Create(ctx context.Context, fields map[string]any) (*Application, error)
}

// Handler serves insurance endpoints.
type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// ListPackages handles GET /insurance/packages
func (h *Handler) ListPackages(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, Packages(), http.StatusOK)
}

// CreateApplication handles POST /insurance/applications. The body is stored
// as submitted; the application enters the review queue as pending.
func (h *Handler) CreateApplication(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	fields := make(map[string]any)
	if r.Body != nil {
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			logger.Warn("unreadable application body", "error", err.Error())
			httputil.RespondError(w, "Failed to create application", http.StatusInternalServerError)
			return
		}
	}

	app, err := h.store.Create(r.Context(), fields)
	if err != nil {
		logger.Error("failed to create application", "error", err.Error())
		httputil.RespondError(w, "Failed to create application", http.StatusInternalServerError)
		return
	}

	logger.Info("insurance application created", "id", app.ID)

	httputil.RespondJSON(w, app, http.StatusCreated)
}
