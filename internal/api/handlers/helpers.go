package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"route-directions-service/internal/directions"
	"route-directions-service/internal/domain"
	"route-directions-service/internal/platform/obs"
	"route-directions-service/internal/ports"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// Decode exactly one JSON object with no unknown fields.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return errors.New("invalid json body")
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("body must contain only one JSON object")
	}
	return nil
}

// validHeading reports whether h is a compass heading in [0, 360). NaN is rejected.
func validHeading(h float64) bool {
	return h >= 0 && h < 360
}

// writeServiceError maps service errors to HTTP statuses.
// Contract violations on append are the caller's fault and map to 422.
func writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, ports.ErrSegmentNotFound), errors.Is(err, ports.ErrSessionNotFound):
		writeError(w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, directions.ErrUnknownFormatter):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotContiguous),
		errors.Is(err, domain.ErrNameMismatch),
		errors.Is(err, domain.ErrZeroLength),
		errors.Is(err, domain.ErrEmptyName):
		writeError(w, r, http.StatusUnprocessableEntity, err.Error())
	default:
		log.Printf("req_id=%s %s failed: %v", obs.RequestID(r.Context()), op, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}
