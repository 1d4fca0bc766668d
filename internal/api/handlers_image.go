package api

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/truemindlabs-dev/synora/pkg/cache"
	"github.com/truemindlabs-dev/synora/pkg/db"
	"github.com/truemindlabs-dev/synora/pkg/engine/canvas"
	"github.com/truemindlabs-dev/synora/pkg/errors"
	"github.com/truemindlabs-dev/synora/pkg/pipeline"
	"github.com/truemindlabs-dev/synora/pkg/storage"
)

// GenerateRequest is the body of POST /api/generate-image.
type GenerateRequest struct {
	Prompt       string `json:"prompt"`
	Width        int    `json:"width,omitempty"`
	Height       int    `json:"height,omitempty"`
	Style        string `json:"style,omitempty"`
	Seed         *int64 `json:"seed,omitempty"`
	ReturnFormat string `json:"return_format,omitempty"`
}

// GenerateResponse is the body of a successful generation.
type GenerateResponse struct {
	Status         string  `json:"status"`
	ImageID        string  `json:"image_id"`
	ImageURL       string  `json:"image_url"`
	ImageData      string  `json:"image_data,omitempty"`
	Prompt         string  `json:"prompt"`
	UserID         string  `json:"user_id"`
	UserEmail      string  `json:"user_email"`
	Timestamp      string  `json:"timestamp"`
	StyleUsed      string  `json:"style_used"`
	Resolution     string  `json:"resolution"`
	AlphaVerified  bool    `json:"alpha_verified"`
	TransparentPct float64 `json:"transparent_pct"`
	Message        string  `json:"message"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	user, ok := userFrom(r.Context())
	if !ok {
		respondError(w, errors.New(errors.ErrCodeUnauthorized, "authentication required"))
		return
	}

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body"))
		return
	}
	format := req.ReturnFormat
	if format == "" {
		format = "base64"
	}
	if format != "base64" && format != "url" {
		respondError(w, errors.New(errors.ErrCodeInvalidInput, "return_format must be base64 or url"))
		return
	}

	result, err := s.scopedRunner(user).Execute(r.Context(), pipeline.Options{
		Prompt: req.Prompt,
		Style:  req.Style,
		Width:  req.Width,
		Height: req.Height,
		Seed:   req.Seed,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	key := imageKey(user.ID)
	url, err := s.backend.Save(r.Context(), key, result.PNG)
	if err != nil {
		respondError(w, err)
		return
	}

	now := time.Now().UTC()
	rec := db.ImageRecord{
		ID:         uuid.New().String(),
		UserID:     user.ID,
		UserEmail:  user.Email,
		Prompt:     req.Prompt,
		ImageURL:   url,
		ImageKey:   key,
		Resolution: fmt.Sprintf("%dx%d", result.Width, result.Height),
		Style:      string(result.StyleUsed),
		Metadata: db.Metadata{
			Seed:           req.Seed,
			AlphaVerified:  result.AlphaVerified,
			TransparentPct: result.TransparentPct,
			Provider:       "synora",
		},
		CreatedAt: now,
	}
	if err := s.repo.Insert(r.Context(), rec); err != nil {
		respondError(w, err)
		return
	}

	resp := GenerateResponse{
		Status:         "success",
		ImageID:        rec.ID,
		ImageURL:       url,
		Prompt:         req.Prompt,
		UserID:         user.ID,
		UserEmail:      user.Email,
		Timestamp:      now.Format(time.RFC3339),
		StyleUsed:      string(result.StyleUsed),
		Resolution:     rec.Resolution,
		AlphaVerified:  result.AlphaVerified,
		TransparentPct: result.TransparentPct,
		Message:        fmt.Sprintf("Generated %s image for %q", result.StyleUsed, req.Prompt),
	}
	if format == "base64" {
		resp.ImageData = base64.StdEncoding.EncodeToString(result.PNG)
	}
	respondJSON(w, http.StatusOK, resp)
}

// scopedRunner copies the shared runner with the user's private cache key
// namespace, so one tenant's artifacts are never served to another.
func (s *Server) scopedRunner(user UserContext) *pipeline.Runner {
	r := *s.runner
	r.Keyer = cache.NewScopedKeyer(r.Keyer, "user:"+user.ID+":")
	return &r
}

// AnalyzeRequest is the body of POST /api/analyze-prompt.
type AnalyzeRequest struct {
	Prompt string `json:"prompt"`
}

// AnalyzeResponse reports the dry-run resolution for a prompt: the style
// that would render it, the keywords that selected the style, and the
// palette as hex triples.
type AnalyzeResponse struct {
	Style    string   `json:"style"`
	Keywords []string `json:"keywords"`
	Palette  []string `json:"palette"`
}

// handleAnalyze resolves style and palette without rendering anything.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body"))
		return
	}
	if req.Prompt == "" {
		respondError(w, errors.New(errors.ErrCodeInvalidPrompt, "prompt is required"))
		return
	}

	style, keywords, pal := s.runner.Analyze(r.Context(), req.Prompt)
	respondJSON(w, http.StatusOK, AnalyzeResponse{
		Style:    string(style),
		Keywords: keywords,
		Palette:  []string{hexColor(pal.Primary), hexColor(pal.Secondary), hexColor(pal.Tertiary)},
	})
}

func hexColor(c canvas.RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// handleServeImage returns a stored artifact. Local files are served
// directly; cloud-stored artifacts redirect to their public URL.
func (s *Server) handleServeImage(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if key == "" || strings.Contains(key, "/") || strings.Contains(key, "..") {
		respondError(w, errors.New(errors.ErrCodeInvalidInput, "invalid image key"))
		return
	}

	local, ok := s.backend.(*storage.Local)
	if !ok {
		http.Redirect(w, r, s.backend.URL(key), http.StatusFound)
		return
	}

	path := local.Path(key)
	if _, err := os.Stat(path); err != nil {
		respondError(w, errors.New(errors.ErrCodeImageNotFound, "image %q not found", key))
		return
	}
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Header().Set("Content-Type", "image/png")
	http.ServeFile(w, r, path)
}

// imageKey builds the storage key for a new artifact. A short user
// fragment keeps keys greppable by owner without exposing the full id.
func imageKey(userID string) string {
	frag := userID
	if len(frag) > 8 {
		frag = frag[:8]
	}
	return frag + "_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
}
