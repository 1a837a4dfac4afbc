package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
)

// HealthHandler reports service and database health.
type HealthHandler struct {
	DB *sql.DB
}

// HealthResponse is the health endpoint payload.
type HealthResponse struct {
	Status    string `json:"status"`
	Addresses int    `json:"addresses"`
}

// Check verifies the database is reachable and reports how many records
// are loaded.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	var count int
	if err := h.DB.QueryRow("SELECT COUNT(*) FROM addresses").Scan(&count); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(HealthResponse{Status: "unavailable"})
		return
	}

	writeJSON(w, HealthResponse{Status: "ok", Addresses: count})
}
