package dto

import (
	"time"

	"tour-planner-service/internal/domain"
)

type PlaceResponse struct {
	PlaceID  string             `json:"placeId"`
	Name     string             `json:"name,omitempty"`
	Types    []string           `json:"types,omitempty"`
	Rating   float64            `json:"rating,omitempty"`
	Address  string             `json:"address,omitempty"`
	Location *domain.Coordinate `json:"location,omitempty"`
	PhotoURL string             `json:"photoUrl,omitempty"`
	Cost     float64            `json:"cost,omitempty"`
	Duration float64            `json:"duration,omitempty"`
}

type ListPlacesResponse struct {
	Places []PlaceResponse `json:"places"`
}

type SavePlanRequest struct {
	User           string            `json:"user"`
	SourceLocation *OriginRequest    `json:"sourceLocation"`
	SelectedPlaces []domain.PlanStop `json:"selectedPlaces"`
	TotalTimeMin   int               `json:"totalTime"`
	Sorted         bool              `json:"isSorted"`
	Summary        string            `json:"summary"`
}

type SavedPlanResponse struct {
	ID             string            `json:"id"`
	User           string            `json:"user"`
	SourceLocation domain.Coordinate `json:"sourceLocation"`
	SelectedPlaces []domain.PlanStop `json:"selectedPlaces"`
	TotalTimeMin   int               `json:"totalTime"`
	Sorted         bool              `json:"isSorted"`
	Summary        string            `json:"summary,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
}

type ListPlansResponse struct {
	Plans []SavedPlanResponse `json:"plans"`
}
