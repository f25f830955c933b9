package handlers

import (
	"net/http"
	"route-directions-service/internal/ports"
)

// HealthHandler reports liveness and whether the segment catalog answers.
type HealthHandler struct {
	Catalog ports.SegmentCatalog
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	segs, err := h.Catalog.ListSegments(r.Context())
	if err != nil {
		writeJSON(w, r, http.StatusServiceUnavailable, map[string]any{
			"status": "degraded",
			"error":  "segment catalog unavailable",
		})
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"status":   "ok",
		"segments": len(segs),
	})
}
