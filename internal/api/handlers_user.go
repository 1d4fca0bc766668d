package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/truemindlabs-dev/synora/pkg/errors"
)

// HistoryItem is one entry of GET /api/user/history.
type HistoryItem struct {
	ImageID    string `json:"image_id"`
	ImageURL   string `json:"image_url"`
	Prompt     string `json:"prompt"`
	Style      string `json:"style"`
	Resolution string `json:"resolution"`
	Timestamp  string `json:"timestamp"`
}

// GalleryItem is one entry of GET /api/user/gallery, trimmed for grid
// display.
type GalleryItem struct {
	URL    string `json:"url"`
	Prompt string `json:"prompt"`
	ID     string `json:"id"`
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	user, ok := userFrom(r.Context())
	if !ok {
		respondError(w, errors.New(errors.ErrCodeUnauthorized, "authentication required"))
		return
	}
	limit := queryInt(r, "limit", 20, 100)
	offset := queryInt(r, "offset", 0, 1<<30)

	recs, err := s.repo.ListByUser(r.Context(), user.ID, limit, offset)
	if err != nil {
		respondError(w, err)
		return
	}
	items := make([]HistoryItem, 0, len(recs))
	for _, rec := range recs {
		items = append(items, HistoryItem{
			ImageID:    rec.ID,
			ImageURL:   rec.ImageURL,
			Prompt:     rec.Prompt,
			Style:      rec.Style,
			Resolution: rec.Resolution,
			Timestamp:  rec.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"status": "success",
		"count":  len(items),
		"items":  items,
	})
}

func (s *Server) handleGallery(w http.ResponseWriter, r *http.Request) {
	user, ok := userFrom(r.Context())
	if !ok {
		respondError(w, errors.New(errors.ErrCodeUnauthorized, "authentication required"))
		return
	}
	limit := queryInt(r, "limit", 12, 50)

	recs, err := s.repo.ListByUser(r.Context(), user.ID, limit, 0)
	if err != nil {
		respondError(w, err)
		return
	}
	items := make([]GalleryItem, 0, len(recs))
	for _, rec := range recs {
		prompt := rec.Prompt
		if len(prompt) > 50 {
			prompt = prompt[:50]
		}
		items = append(items, GalleryItem{URL: rec.ImageURL, Prompt: prompt, ID: rec.ID})
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"status": "success",
		"count":  len(items),
		"items":  items,
	})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	user, ok := userFrom(r.Context())
	if !ok {
		respondError(w, errors.New(errors.ErrCodeUnauthorized, "authentication required"))
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	user, ok := userFrom(r.Context())
	if !ok {
		respondError(w, errors.New(errors.ErrCodeUnauthorized, "authentication required"))
		return
	}

	totalImages, err := s.repo.CountByUser(r.Context(), user.ID)
	if err != nil {
		respondError(w, err)
		return
	}
	totalMemory, err := s.store.Count(r.Context(), user.ID)
	if err != nil {
		respondError(w, err)
		return
	}
	styles, err := s.repo.StyleCounts(r.Context(), user.ID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"status":       "success",
		"user_id":      user.ID,
		"total_images": totalImages,
		"total_memory": totalMemory,
		"styles_used":  styles,
	})
}

// queryInt parses a bounded query parameter, falling back to def on
// absence or garbage.
func queryInt(r *http.Request, name string, def, max int) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	if n > max {
		return max
	}
	return n
}
