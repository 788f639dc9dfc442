package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"dconn.dev/portfolio/internal/views"
)

const maxPlaceholderSize = 2000

// Placeholder handles GET /api/placeholder/{width}/{height} - a grey SVG
// box labelled with its size
func Placeholder(w http.ResponseWriter, r *http.Request) {
	width, err := strconv.Atoi(chi.URLParam(r, "width"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid width")
		return
	}
	height, err := strconv.Atoi(chi.URLParam(r, "height"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid height")
		return
	}

	// Clamp to reasonable values
	width = clamp(width, 1, maxPlaceholderSize)
	height = clamp(height, 1, maxPlaceholderSize)

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	if err := views.PlaceholderSVG(width, height).Render(w); err != nil {
		zap.L().Warn("Error rendering placeholder", zap.Error(err))
	}
}

// clamp limits a value to a range
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
