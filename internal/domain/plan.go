package domain

import "time"

// SavedPlan is a generated itinerary a caller chose to keep.
// User is an opaque caller-supplied key; this service does no session
// handling of its own.
type SavedPlan struct {
	ID             string     `bson:"_id" json:"id"`
	User           string     `bson:"user" json:"user"`
	SourceLocation Coordinate `bson:"sourceLocation" json:"sourceLocation"`
	Stops          []PlanStop `bson:"selectedPlaces" json:"selectedPlaces"`
	TotalTimeMin   int        `bson:"totalTime" json:"totalTime"`
	Sorted         bool       `bson:"isSorted" json:"isSorted"`
	Summary        string     `bson:"summary,omitempty" json:"summary,omitempty"`
	CreatedAt      time.Time  `bson:"createdAt" json:"createdAt"`
}

// PlanStop is the persisted form of one itinerary stop.
type PlanStop struct {
	PlaceID       string      `bson:"place" json:"place"`
	Name          string      `bson:"name,omitempty" json:"name,omitempty"`
	Location      *Coordinate `bson:"location,omitempty" json:"location,omitempty"`
	Cost          float64     `bson:"cost,omitempty" json:"cost,omitempty"`
	DurationMin   float64     `bson:"duration,omitempty" json:"duration,omitempty"`
	LegTravelSec  int         `bson:"legTravelSec,omitempty" json:"legTravelSec,omitempty"`
	ArrivalSec    int         `bson:"arrivalSec,omitempty" json:"arrivalSec,omitempty"`
	ArrivalTime   string      `bson:"arrivalTime,omitempty" json:"arrivalTime,omitempty"`
	DepartureTime string      `bson:"departureTime,omitempty" json:"departureTime,omitempty"`
}
