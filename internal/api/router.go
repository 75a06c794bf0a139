package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"tour-planner-service/internal/api/handlers"
	"tour-planner-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root; handlers stay
// unaware of concrete adapters. optimizer may be nil, in which case
// planning always uses the local greedy path.
func NewRouter(places ports.PlaceRepository, plans ports.PlanRepository, optimizer ports.RouteOptimizer) http.Handler {
	r := mux.NewRouter()

	planHandler := &handlers.TourPlanHandler{Places: places, Optimizer: optimizer}
	savedHandler := &handlers.SavedPlanHandler{Repo: plans}
	placeHandler := &handlers.PlaceHandler{Repo: places}

	r.HandleFunc("/health", handlers.Health).Methods(http.MethodGet)

	apiRouter := r.PathPrefix("/api").Subrouter()
	apiRouter.HandleFunc("/plan/optimize", planHandler.Optimize).Methods(http.MethodPost)
	apiRouter.HandleFunc("/places", placeHandler.List).Methods(http.MethodGet)
	apiRouter.HandleFunc("/plans", savedHandler.Create).Methods(http.MethodPost)
	apiRouter.HandleFunc("/plans", savedHandler.List).Methods(http.MethodGet)
	apiRouter.HandleFunc("/plans", savedHandler.DeleteAll).Methods(http.MethodDelete)
	apiRouter.HandleFunc("/plans/{id}", savedHandler.Delete).Methods(http.MethodDelete)

	return loggingMiddleware(r)
}
