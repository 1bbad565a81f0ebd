package handlers

import (
	"database/sql"
	"net/http"
)

type HealthHandler struct {
	db *sql.DB
}

func NewHealthHandler(db *sql.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// LivenessHandler handles GET /healthz. It pings the database so load
// balancers stop routing to an instance that lost its pool.
func (h *HealthHandler) LivenessHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.db.PingContext(r.Context()); err != nil {
		errorResponse(w, r, http.StatusServiceUnavailable, "database unreachable")
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"status": "ok"}); err != nil {
		serverErrorResponse(w, r, err)
	}
}
