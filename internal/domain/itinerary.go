package domain

// Represents one stop of a finalized itinerary with its timing attached.
// A TimedStop is computed once per planning request and never mutated
// afterwards. ArrivalSec is cumulative seconds from trip start;
// LegTravelSec is the travel time from the previous point in the order.
type TimedStop struct {
	Stop
	LegTravelSec  int
	ArrivalSec    int
	StaySec       int
	ArrivalTime   string
	DepartureTime string
}

// Aggregate statistics over a finalized TimedStop sequence.
// ReturnTripMin estimates the trip from the last stop back to the
// origin; TotalDurationMin is travel + visit + return.
type TripSummary struct {
	TotalTravelMin     int
	TotalVisitMin      int
	ReturnTripMin      int
	TotalDurationMin   int
	AvgStayTimeMin     int
	EstimatedStartTime string
	EstimatedEndTime   string
}

// The output of timeline building: ordered timed stops plus totals.
// An empty itinerary with a zeroed summary is a valid outcome, distinct
// from a planning failure.
type Itinerary struct {
	Stops   []TimedStop
	Summary TripSummary
}
