package document

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	documents map[uuid.UUID]*Document
	err       error
}

func newFakeStore(docs ...*Document) *fakeStore {
	store := &fakeStore{documents: make(map[uuid.UUID]*Document)}
	for _, doc := range docs {
		store.documents[doc.ID] = doc
	}
	return store
}

func (f *fakeStore) List(_ context.Context) ([]*Document, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*Document, 0, len(f.documents))
	for _, doc := range f.documents {
		out = append(out, doc)
	}
	return out, nil
}

func (f *fakeStore) GetByID(_ context.Context, id uuid.UUID) (*Document, error) {
	if f.err != nil {
		return nil, f.err
	}
	doc, ok := f.documents[id]
	if !ok {
		return nil, ErrNotFound
	}
	return doc, nil
}

func newTestRouter(store Store) http.Handler {
	h := NewHandler(store)
	r := chi.NewRouter()
	r.Get("/documents", h.List)
	r.Post("/documents/upload", h.Upload)
	r.Get("/documents/{id}", h.Get)
	return r
}

func sampleDocument() *Document {
	return &Document{
		ID:        uuid.New(),
		Filename:  "hop-dong-bao-hiem.pdf",
		FileType:  "application/pdf",
		FileSize:  204800,
		Status:    "processed",
		CreatedAt: time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 10, 1, 9, 5, 0, 0, time.UTC),
	}
}

func TestHandler_List(t *testing.T) {
	doc := sampleDocument()
	router := newTestRouter(newFakeStore(doc))

	req := httptest.NewRequest(http.MethodGet, "/documents", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var docs []Document
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &docs))
	require.Len(t, docs, 1)
	assert.Equal(t, doc.Filename, docs[0].Filename)
}

func TestHandler_List_Empty(t *testing.T) {
	router := newTestRouter(newFakeStore())

	req := httptest.NewRequest(http.MethodGet, "/documents", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHandler_Get(t *testing.T) {
	doc := sampleDocument()
	router := newTestRouter(newFakeStore(doc))

	req := httptest.NewRequest(http.MethodGet, "/documents/"+doc.ID.String(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got Document
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, doc.ID, got.ID)
	assert.Equal(t, doc.FileSize, got.FileSize)
}

func TestHandler_Get_NotFound(t *testing.T) {
	router := newTestRouter(newFakeStore())

	for _, id := range []string{uuid.NewString(), "not-a-uuid"} {
		req := httptest.NewRequest(http.MethodGet, "/documents/"+id, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Document not found", body["error"])
	}
}

func TestHandler_Get_StoreFailure(t *testing.T) {
	store := newFakeStore()
	store.err = errors.New("connection refused")
	router := newTestRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/documents/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandler_Upload_NotImplemented(t *testing.T) {
	router := newTestRouter(newFakeStore())

	req := httptest.NewRequest(http.MethodPost, "/documents/upload", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotImplemented, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Document upload requires object storage configuration", body["error"])
	assert.Equal(t, "This endpoint will be fully implemented after bucket setup", body["message"])
}
