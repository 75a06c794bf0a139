package dto

import (
	"encoding/json"
	"fmt"

	"tour-planner-service/internal/domain"
)

// CoordinateRequest mirrors the wire shape of a coordinate with both
// components required.
type CoordinateRequest struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

// OriginRequest accepts an origin either as a bare coordinate or
// wrapped in a {location: {...}} envelope. Both shapes normalize to
// the canonical Coordinate here, at the system boundary; nothing past
// the DTO layer ever sees the envelope.
type OriginRequest struct {
	domain.Coordinate
}

func (o *OriginRequest) UnmarshalJSON(b []byte) error {
	var raw struct {
		Lat      *float64           `json:"lat"`
		Lng      *float64           `json:"lng"`
		Location *CoordinateRequest `json:"location"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	lat, lng := raw.Lat, raw.Lng
	if raw.Location != nil {
		lat, lng = raw.Location.Lat, raw.Location.Lng
	}
	if lat == nil || lng == nil {
		return fmt.Errorf("origin must include lat and lng")
	}

	o.Coordinate = domain.Coordinate{Lat: *lat, Lng: *lng}
	return nil
}

// DestinationRequest is one requested stop. Historic clients disagree
// on field names (id vs placeId, visitDurationMinutes vs duration);
// both spellings are accepted and collapsed here.
type DestinationRequest struct {
	ID                   string             `json:"id"`
	PlaceID              string             `json:"placeId"`
	Name                 string             `json:"name"`
	Location             *CoordinateRequest `json:"location"`
	VisitDurationMinutes *float64           `json:"visitDurationMinutes"`
	Duration             *float64           `json:"duration"`
	Cost                 *float64           `json:"cost"`
}

type TourPlanRequest struct {
	Origin       *OriginRequest       `json:"origin"`
	Destinations []DestinationRequest `json:"destinations"`
	Optimize     bool                 `json:"optimize"`
}

// ToStops converts the wire destinations into canonical Stops.
func (r TourPlanRequest) ToStops() []domain.Stop {
	stops := make([]domain.Stop, 0, len(r.Destinations))
	for _, d := range r.Destinations {
		id := d.ID
		if id == "" {
			id = d.PlaceID
		}

		visit := d.VisitDurationMinutes
		if visit == nil {
			visit = d.Duration
		}

		var loc *domain.Coordinate
		if d.Location != nil && d.Location.Lat != nil && d.Location.Lng != nil {
			loc = &domain.Coordinate{Lat: *d.Location.Lat, Lng: *d.Location.Lng}
		}

		stops = append(stops, domain.Stop{
			ID:                   id,
			Name:                 d.Name,
			Location:             loc,
			VisitDurationMinutes: visit,
			Cost:                 d.Cost,
		})
	}
	return stops
}

type TimedStopResponse struct {
	ID                   string             `json:"id"`
	Name                 string             `json:"name,omitempty"`
	Location             *domain.Coordinate `json:"location,omitempty"`
	Cost                 *float64           `json:"cost,omitempty"`
	VisitDurationMinutes float64            `json:"visitDurationMinutes"`
	LegTravelSec         int                `json:"legTravelSec"`
	ArrivalSec           int                `json:"arrivalSec"`
	StaySec              int                `json:"staySec"`
	ArrivalTime          string             `json:"arrivalTime"`
	DepartureTime        string             `json:"departureTime"`
}

type TimeDetailsResponse struct {
	TotalTravelMin     int    `json:"totalTravelMin"`
	TotalVisitMin      int    `json:"totalVisitMin"`
	ReturnTripMin      int    `json:"returnTripMin"`
	TotalDurationMin   int    `json:"totalDurationMin"`
	AvgStayTimeMin     int    `json:"avgStayTimeMin"`
	EstimatedStartTime string `json:"estimatedStartTime"`
	EstimatedEndTime   string `json:"estimatedEndTime"`
}

type TourPlanResponse struct {
	Message     string              `json:"message"`
	Optimized   bool                `json:"optimized"`
	Plan        []TimedStopResponse `json:"plan"`
	TimeDetails TimeDetailsResponse `json:"timeDetails"`
}
