package document

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/vam-insurance/insurance-api/internal/httputil"
	"github.com/vam-insurance/insurance-api/internal/logging"
)

// Store is the slice of the repository the handlers need.
type Store interface {
	List(ctx context.Context) ([]*Document, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Document, error)
}

// Handler serves document endpoints.
type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// List handles GET /documents
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	docs, err := h.store.List(r.Context())
	if err != nil {
		logger.Error("failed to list documents", "error", err.Error())
		httputil.RespondError(w, "Failed to fetch documents", http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, docs, http.StatusOK)
}

// Get handles GET /documents/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondError(w, "Document not found", http.StatusNotFound)
		return
	}

	doc, err := h.store.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httputil.RespondError(w, "Document not found", http.StatusNotFound)
			return
		}
		logger.Error("failed to fetch document", "id", id, "error", err.Error())
		httputil.RespondError(w, "Failed to fetch document", http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, doc, http.StatusOK)
}

// Upload handles POST /documents/upload. Uploads live in the external
// storage pipeline; the endpoint is declared but answers 501 until that
// integration is wired up.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, httputil.ErrorResponse{
		Error:   "Document upload requires object storage configuration",
		Message: "This endpoint will be fully implemented after bucket setup",
	}, http.StatusNotImplemented)
}
