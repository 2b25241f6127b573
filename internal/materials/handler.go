package materials

import (
	"encoding/json"
	"net/http"
)

type Handler struct{}

type listResponse struct {
	Backings     map[string]Backing         `json:"backings"`
	Adhesives    map[string]Adhesive        `json:"adhesives"`
	Surfaces     map[string]Surface         `json:"surfaces"`
	Environments map[string]Environment     `json:"environments"`
	Ruptures     map[string]RuptureStrength `json:"ruptures"`
}

// List serves the full reference tables so the client can populate its
// selection form without hardcoding a second copy of the data.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(listResponse{
		Backings:     Backings,
		Adhesives:    Adhesives,
		Surfaces:     Surfaces,
		Environments: Environments,
		Ruptures:     Ruptures,
	})
}
