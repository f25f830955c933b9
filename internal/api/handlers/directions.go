package handlers

import (
	"net/http"
	"route-directions-service/internal/api/dto"
	"route-directions-service/internal/ports"
	"route-directions-service/internal/services"
	"strings"
)

type DirectionsHandler struct {
	Catalog          ports.SegmentCatalog
	DefaultFormatter string
	NormalizeTurns   bool
	Renderer         services.Renderer
}

// Plan builds a route from catalog segment references and returns its directions.
func (h *DirectionsHandler) Plan(w http.ResponseWriter, r *http.Request) {
	var req dto.DirectionsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if len(req.Segments) == 0 {
		writeError(w, r, http.StatusBadRequest, "segments must not be empty")
		return
	}
	if len(req.Segments) > 500 {
		writeError(w, r, http.StatusBadRequest, "segments must contain at most 500 entries")
		return
	}
	if req.Heading != nil && !validHeading(*req.Heading) {
		writeError(w, r, http.StatusBadRequest, "heading must be in [0, 360)")
		return
	}

	formatter := strings.TrimSpace(req.Formatter)
	if formatter == "" {
		formatter = h.DefaultFormatter
	}
	normalize := h.NormalizeTurns
	if req.Normalize != nil {
		normalize = *req.Normalize
	}

	refs := make([]services.SegmentRef, 0, len(req.Segments))
	for _, s := range req.Segments {
		refs = append(refs, services.SegmentRef{SegmentID: s.SegmentID, Reversed: s.Reversed})
	}

	res, err := h.Renderer.PlanDirections(r.Context(), services.PlanDirectionsRequest{
		Segments:       refs,
		Formatter:      formatter,
		Normalize:      normalize,
		InitialHeading: req.Heading,
	}, h.Catalog)
	if err != nil {
		writeServiceError(w, r, "plan directions", err)
		return
	}

	writeJSON(w, r, http.StatusOK, toDirections(res))
}

func toDirections(res *services.DirectionsResult) dto.DirectionsResponse {
	return dto.DirectionsResponse{
		Formatter:      res.Formatter,
		InitialHeading: res.InitialHeading,
		Directions:     res.Directions,
		Lines:          splitLines(res.Directions),
		Cached:         res.Cached,
		Route:          toRoute(res.Route),
	}
}
