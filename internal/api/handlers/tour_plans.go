package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"tour-planner-service/internal/api/dto"
	"tour-planner-service/internal/ports"
	"tour-planner-service/internal/services"
)

// TourPlanHandler exposes the trip-planning operation: order a set of
// selected stops and attach an itinerary timeline.
type TourPlanHandler struct {
	Places    ports.PlaceRepository
	Optimizer ports.RouteOptimizer
}

// Optimize handles POST /api/plan/optimize.
func (h *TourPlanHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	var req dto.TourPlanRequest

	// Unknown fields pass through untouched: historic clients attach
	// display data (address, photoUrl) the planner has no use for.
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body: "+err.Error())
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if req.Origin == nil {
		writeError(w, r, http.StatusBadRequest, "origin is required")
		return
	}
	if len(req.Destinations) == 0 {
		writeError(w, r, http.StatusBadRequest, "at least one destination is required")
		return
	}

	tripReq := services.TripRequest{
		Origin:   req.Origin.Coordinate,
		Stops:    req.ToStops(),
		Optimize: req.Optimize,
	}

	plan, err := services.PlanTrip(r.Context(), tripReq, h.Places, h.Optimizer, time.Now())
	if err != nil {
		status, msg := planErrorStatus(err)
		if status == http.StatusInternalServerError {
			log.WithError(err).Error("plan trip failed")
		}
		writeError(w, r, status, msg)
		return
	}

	res := dto.TourPlanResponse{
		Message:   "Plan generated",
		Optimized: plan.Optimized,
		Plan:      make([]dto.TimedStopResponse, 0, len(plan.Itinerary.Stops)),
		TimeDetails: dto.TimeDetailsResponse{
			TotalTravelMin:     plan.Itinerary.Summary.TotalTravelMin,
			TotalVisitMin:      plan.Itinerary.Summary.TotalVisitMin,
			ReturnTripMin:      plan.Itinerary.Summary.ReturnTripMin,
			TotalDurationMin:   plan.Itinerary.Summary.TotalDurationMin,
			AvgStayTimeMin:     plan.Itinerary.Summary.AvgStayTimeMin,
			EstimatedStartTime: plan.Itinerary.Summary.EstimatedStartTime,
			EstimatedEndTime:   plan.Itinerary.Summary.EstimatedEndTime,
		},
	}

	for _, s := range plan.Itinerary.Stops {
		res.Plan = append(res.Plan, dto.TimedStopResponse{
			ID:                   s.ID,
			Name:                 s.Name,
			Location:             s.Location,
			Cost:                 s.Cost,
			VisitDurationMinutes: s.VisitMinutes(),
			LegTravelSec:         s.LegTravelSec,
			ArrivalSec:           s.ArrivalSec,
			StaySec:              s.StaySec,
			ArrivalTime:          s.ArrivalTime,
			DepartureTime:        s.DepartureTime,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// planErrorStatus maps planning errors to HTTP statuses. Validation and
// missing-location failures belong to the caller; everything else is a
// generic internal failure.
func planErrorStatus(err error) (int, string) {
	var vErr *services.ValidationError
	if errors.As(err, &vErr) {
		return http.StatusBadRequest, vErr.Msg
	}

	var mlErr *services.MissingLocationError
	if errors.As(err, &mlErr) {
		return http.StatusBadRequest, mlErr.Error() +
			". Please select places with valid locations."
	}

	return http.StatusInternalServerError, "internal server error"
}
