package services

import (
	"math"
	"time"

	"tour-planner-service/internal/domain"
)

// Wall-clock rendering for arrival/departure estimates.
const clockFormat = "3:04:05 PM"

// BuildTimeline walks a finalized visiting order once, attaching
// per-stop timing and computing trip totals.
//
// legSeconds[i] is the travel to stop i and is added to the running
// clock before the stop's arrival is recorded; the stop's stay time is
// added after. The return-trip estimate from the last stop back to the
// origin uses the straight-line heuristic and contributes to the total
// duration only. now anchors all wall-clock strings; handlers pass
// time.Now(), tests pass a fixed instant.
//
// An empty order yields an empty itinerary with a zeroed summary: a
// valid outcome, not an error.
func BuildTimeline(origin *domain.Coordinate, ordered []domain.Stop, legSeconds []int, now time.Time) domain.Itinerary {
	start := now.Format(clockFormat)

	if len(ordered) == 0 {
		return domain.Itinerary{
			Stops: []domain.TimedStop{},
			Summary: domain.TripSummary{
				EstimatedStartTime: start,
				EstimatedEndTime:   start,
			},
		}
	}

	elapsed := 0
	totalTravel := 0
	totalVisit := 0

	timed := make([]domain.TimedStop, 0, len(ordered))
	for i, s := range ordered {
		leg := 0
		if i < len(legSeconds) {
			leg = legSeconds[i]
		}

		elapsed += leg
		totalTravel += leg
		arrival := elapsed

		stay := s.StaySeconds()
		elapsed += stay
		totalVisit += stay

		timed = append(timed, domain.TimedStop{
			Stop:          s,
			LegTravelSec:  leg,
			ArrivalSec:    arrival,
			StaySec:       stay,
			ArrivalTime:   now.Add(time.Duration(arrival) * time.Second).Format(clockFormat),
			DepartureTime: now.Add(time.Duration(arrival+stay) * time.Second).Format(clockFormat),
		})
	}

	returnSec := 0
	if last := ordered[len(ordered)-1]; origin != nil && last.Location != nil {
		returnSec = HeuristicLegSeconds(*last.Location, *origin)
	}

	totalWithReturn := totalTravel + totalVisit + returnSec

	return domain.Itinerary{
		Stops: timed,
		Summary: domain.TripSummary{
			TotalTravelMin:     roundMin(totalTravel),
			TotalVisitMin:      roundMin(totalVisit),
			ReturnTripMin:      roundMin(returnSec),
			TotalDurationMin:   roundMin(totalWithReturn),
			AvgStayTimeMin:     int(math.Round(float64(totalVisit) / float64(len(ordered)) / 60)),
			EstimatedStartTime: start,
			EstimatedEndTime:   now.Add(time.Duration(totalWithReturn) * time.Second).Format(clockFormat),
		},
	}
}

func roundMin(seconds int) int {
	return int(math.Round(float64(seconds) / 60))
}
