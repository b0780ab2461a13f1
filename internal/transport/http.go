package transport

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"main/internal/catalog"
	"main/internal/handlers"
	"main/internal/svg"
)

// IconServer: HTTP endpoints for icon retrieval.
// Strict lookups here: a missing identifier is a 404, unlike the
// WebSocket getIcon path which falls back to a placeholder.
type IconServer struct {
	source handlers.IconSource
	scaler handlers.Scaler
}

func NewIconServer(source handlers.IconSource, scaler handlers.Scaler) *IconServer {
	return &IconServer{
		source: source,
		scaler: scaler,
	}
}

// RegisterRoutes: attaches the HTTP endpoints to a mux
func (s *IconServer) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/icons", s.handleList)
	mux.HandleFunc("/icons/", s.handleIcon)
}

func (s *IconServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"icons":  s.source.Count(),
	})
}

// handleList: GET /icons
func (s *IconServer) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"ids":   s.source.IDs(),
		"count": s.source.Count(),
	})
}

// handleIcon: GET /icons/{id} and GET /icons/{id}.svg
func (s *IconServer) handleIcon(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/icons/")
	wantSVG := strings.HasSuffix(id, ".svg")
	if wantSVG {
		id = strings.TrimSuffix(id, ".svg")
	}
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "Invalid icon id", http.StatusBadRequest)
		return
	}

	ic, err := s.source.Get(id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			http.Error(w, "Icon not found", http.StatusNotFound)
			return
		}
		log.Printf("Error: Icon lookup failed for %s - %v", id, err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	width, ok := queryDimension(r, "w", ic.DisplaySize.Width)
	if !ok {
		http.Error(w, "Invalid width", http.StatusBadRequest)
		return
	}
	height, ok := queryDimension(r, "h", ic.DisplaySize.Height)
	if !ok {
		http.Error(w, "Invalid height", http.StatusBadRequest)
		return
	}

	scaled := s.scaler.Scaled(ic, width, height)

	if wantSVG {
		document, err := svg.Write(scaled)
		if err != nil {
			log.Printf("Error: SVG write failed for %s - %v", id, err)
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/svg+xml")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(document))
		return
	}

	writeJSON(w, http.StatusOK, scaled)
}

// queryDimension: optional positive float query parameter
func queryDimension(r *http.Request, name string, fallback float64) (float64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, true
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value <= 0 || value > 4096 {
		return 0, false
	}
	return value, true
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Error: Failed to encode response - %v", err)
	}
}
