package handlers

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	"tour-planner-service/internal/api/dto"
	"tour-planner-service/internal/ports"
)

// PlaceHandler exposes read-only access to the persisted places store.
type PlaceHandler struct {
	Repo ports.PlaceRepository
}

func (h *PlaceHandler) List(w http.ResponseWriter, r *http.Request) {
	places, err := h.Repo.ListPlaces(r.Context())
	if err != nil {
		log.WithError(err).Error("list places failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListPlacesResponse{Places: make([]dto.PlaceResponse, 0, len(places))}
	for _, p := range places {
		res.Places = append(res.Places, dto.PlaceResponse{
			PlaceID:  p.PlaceID,
			Name:     p.Name,
			Types:    p.Types,
			Rating:   p.Rating,
			Address:  p.Address,
			Location: p.Location,
			PhotoURL: p.PhotoURL,
			Cost:     p.Cost,
			Duration: p.Duration,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
