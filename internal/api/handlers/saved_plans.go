package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"tour-planner-service/internal/api/dto"
	"tour-planner-service/internal/domain"
	"tour-planner-service/internal/ports"
)

// SavedPlanHandler exposes CRUD over itineraries a caller chose to
// keep. The user key is caller-supplied and opaque; session handling
// lives outside this service.
type SavedPlanHandler struct {
	Repo ports.PlanRepository
}

// Create handles POST /api/plans.
func (h *SavedPlanHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.SavePlanRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	if strings.TrimSpace(req.User) == "" {
		writeError(w, r, http.StatusBadRequest, "user is required")
		return
	}
	if req.SourceLocation == nil {
		writeError(w, r, http.StatusBadRequest, "sourceLocation is required")
		return
	}
	if len(req.SelectedPlaces) == 0 {
		writeError(w, r, http.StatusBadRequest, "selectedPlaces must not be empty")
		return
	}

	plan := domain.SavedPlan{
		ID:             uuid.NewString(),
		User:           req.User,
		SourceLocation: req.SourceLocation.Coordinate,
		Stops:          req.SelectedPlaces,
		TotalTimeMin:   req.TotalTimeMin,
		Sorted:         req.Sorted,
		Summary:        req.Summary,
		CreatedAt:      time.Now().UTC(),
	}
	if strings.TrimSpace(plan.Summary) == "" {
		plan.Summary = summarize(plan.Stops)
	}

	if err := h.Repo.Insert(r.Context(), plan); err != nil {
		log.WithError(err).Error("save plan failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusCreated, toSavedPlanResponse(plan))
}

// List handles GET /api/plans?user=.
func (h *SavedPlanHandler) List(w http.ResponseWriter, r *http.Request) {
	user := strings.TrimSpace(r.URL.Query().Get("user"))
	if user == "" {
		writeError(w, r, http.StatusBadRequest, "user query parameter is required")
		return
	}

	plans, err := h.Repo.ListByUser(r.Context(), user)
	if err != nil {
		log.WithError(err).Error("list plans failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListPlansResponse{Plans: make([]dto.SavedPlanResponse, 0, len(plans))}
	for _, p := range plans {
		res.Plans = append(res.Plans, toSavedPlanResponse(p))
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Delete handles DELETE /api/plans/{id}?user=.
func (h *SavedPlanHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := strings.TrimSpace(r.URL.Query().Get("user"))
	if user == "" {
		writeError(w, r, http.StatusBadRequest, "user query parameter is required")
		return
	}

	id := mux.Vars(r)["id"]

	deleted, err := h.Repo.Delete(r.Context(), user, id)
	if err != nil {
		log.WithError(err).Error("delete plan failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	if !deleted {
		writeError(w, r, http.StatusNotFound, "plan not found")
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{"message": "Plan deleted successfully"})
}

// DeleteAll handles DELETE /api/plans?user=.
func (h *SavedPlanHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	user := strings.TrimSpace(r.URL.Query().Get("user"))
	if user == "" {
		writeError(w, r, http.StatusBadRequest, "user query parameter is required")
		return
	}

	if err := h.Repo.DeleteAllByUser(r.Context(), user); err != nil {
		log.WithError(err).Error("delete all plans failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{"message": "All plans deleted for user"})
}

func toSavedPlanResponse(p domain.SavedPlan) dto.SavedPlanResponse {
	return dto.SavedPlanResponse{
		ID:             p.ID,
		User:           p.User,
		SourceLocation: p.SourceLocation,
		SelectedPlaces: p.Stops,
		TotalTimeMin:   p.TotalTimeMin,
		Sorted:         p.Sorted,
		Summary:        p.Summary,
		CreatedAt:      p.CreatedAt,
	}
}

// summarize renders a plain-text recap of a plan's stops, used when the
// caller saved a plan without one.
func summarize(stops []domain.PlanStop) string {
	var b strings.Builder
	for i, s := range stops {
		if i > 0 {
			b.WriteString("\n\n")
		}
		label := s.Name
		if label == "" {
			label = s.PlaceID
		}
		fmt.Fprintf(&b, "%d. %s", i+1, label)
		if s.ArrivalTime != "" {
			fmt.Fprintf(&b, "\nArrival: %s", s.ArrivalTime)
		}
		if s.DepartureTime != "" {
			fmt.Fprintf(&b, "\nDeparture: %s", s.DepartureTime)
		}
		if s.LegTravelSec > 0 {
			fmt.Fprintf(&b, "\nTravel: %d minutes", s.LegTravelSec/60)
		}
	}
	return b.String()
}
