package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// handleListDocuments lists stored conversions. Requires a configured
// document store.
func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	store := s.orchestrator.Store()
	if store == nil {
		jsonError(w, "no document store configured", http.StatusServiceUnavailable)
		return
	}

	limit := 200
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	docs, err := store.ListDocuments(r.Context(), limit)
	if err != nil {
		jsonError(w, "failed to list documents: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"documents": docs})
}

// handleGetDocument returns one stored conversion.
func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	store := s.orchestrator.Store()
	if store == nil {
		jsonError(w, "no document store configured", http.StatusServiceUnavailable)
		return
	}

	docID := chi.URLParam(r, "docID")
	doc, err := store.GetDocument(r.Context(), docID)
	if err != nil {
		jsonError(w, "failed to get document: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if doc == nil {
		jsonError(w, "document not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(doc)
}

// handleDeleteDocument removes a stored conversion.
func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	store := s.orchestrator.Store()
	if store == nil {
		jsonError(w, "no document store configured", http.StatusServiceUnavailable)
		return
	}

	docID := chi.URLParam(r, "docID")
	if err := store.DeleteDocument(r.Context(), docID); err != nil {
		jsonError(w, "failed to delete document: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"deleted": docID})
}
