package aging

import (
	"encoding/json"
	"net/http"

	"TapeLab/internal/tape"
)

type Handler struct{}

// Tint serves the visual-degradation descriptor for the renderer.
func (h *Handler) Tint(w http.ResponseWriter, r *http.Request) {
	var cfg tape.Config
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(YellowTint(cfg))
}
