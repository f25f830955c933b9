package handlers

import (
	"net/http"
	"route-directions-service/internal/api/dto"
	"route-directions-service/internal/ports"
	"strconv"

	"github.com/gorilla/mux"
)

// SegmentHandler exposes read-only catalog endpoints.
type SegmentHandler struct {
	Catalog ports.SegmentCatalog
}

func (h *SegmentHandler) List(w http.ResponseWriter, r *http.Request) {
	segs, err := h.Catalog.ListSegments(r.Context())
	if err != nil {
		writeServiceError(w, r, "list segments", err)
		return
	}

	res := dto.ListSegmentsResponse{
		Segments: make([]dto.SegmentResponse, 0, len(segs)),
	}
	for _, s := range segs {
		res.Segments = append(res.Segments, toCatalogSegment(s))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *SegmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "segment id must be an integer")
		return
	}

	seg, err := h.Catalog.GetSegment(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, "get segment", err)
		return
	}

	writeJSON(w, r, http.StatusOK, toCatalogSegment(seg))
}
