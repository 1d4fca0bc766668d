package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/truemindlabs-dev/synora/pkg/errors"
	"github.com/truemindlabs-dev/synora/pkg/memstore"
)

// StoreRequest is the body of POST /api/store. Value may be any JSON
// document.
type StoreRequest struct {
	Key       string          `json:"key"`
	Value     json.RawMessage `json:"value"`
	Namespace string          `json:"namespace,omitempty"`
}

func (s *Server) handleStorePut(w http.ResponseWriter, r *http.Request) {
	user, ok := userFrom(r.Context())
	if !ok {
		respondError(w, errors.New(errors.ErrCodeUnauthorized, "authentication required"))
		return
	}

	var req StoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body"))
		return
	}
	if err := memstore.ValidateKey(req.Key); err != nil {
		respondError(w, err)
		return
	}
	if len(req.Value) == 0 {
		respondError(w, errors.New(errors.ErrCodeInvalidInput, "value must not be empty"))
		return
	}

	entry, err := s.store.Put(r.Context(), memstore.Entry{
		Key:       req.Key,
		Namespace: req.Namespace,
		UserID:    user.ID,
		Email:     user.Email,
		Data:      req.Value,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"status":    "success",
		"key":       entry.Key,
		"namespace": entry.Namespace,
		"saved_at":  entry.UpdatedAt.Format(time.RFC3339),
	})
}

func (s *Server) handleStoreGet(w http.ResponseWriter, r *http.Request) {
	user, ok := userFrom(r.Context())
	if !ok {
		respondError(w, errors.New(errors.ErrCodeUnauthorized, "authentication required"))
		return
	}
	key := chi.URLParam(r, "key")
	namespace := r.URL.Query().Get("namespace")

	entry, err := s.store.Get(r.Context(), user.ID, namespace, key)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"status":     "success",
		"key":        entry.Key,
		"namespace":  entry.Namespace,
		"value":      entry.Data,
		"created_at": entry.CreatedAt.Format(time.RFC3339),
		"updated_at": entry.UpdatedAt.Format(time.RFC3339),
	})
}

func (s *Server) handleStoreList(w http.ResponseWriter, r *http.Request) {
	user, ok := userFrom(r.Context())
	if !ok {
		respondError(w, errors.New(errors.ErrCodeUnauthorized, "authentication required"))
		return
	}
	namespace := r.URL.Query().Get("namespace")

	entries, err := s.store.List(r.Context(), user.ID, namespace)
	if err != nil {
		respondError(w, err)
		return
	}
	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, e.Key)
	}
	if namespace == "" {
		namespace = memstore.DefaultNamespace
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"status":    "success",
		"namespace": namespace,
		"count":     len(keys),
		"keys":      keys,
	})
}

func (s *Server) handleStoreDelete(w http.ResponseWriter, r *http.Request) {
	user, ok := userFrom(r.Context())
	if !ok {
		respondError(w, errors.New(errors.ErrCodeUnauthorized, "authentication required"))
		return
	}
	key := chi.URLParam(r, "key")
	namespace := r.URL.Query().Get("namespace")

	if err := s.store.Delete(r.Context(), user.ID, namespace, key); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"status": "success",
		"key":    key,
	})
}
