package services

import "fmt"

// ValidationError reports a malformed planning request.
// Terminal: surfaced to the caller as-is, never retried.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// MissingLocationError reports a stop that no resolution step could
// geolocate. The whole plan fails rather than silently dropping the
// stop, since dropping would change trip semantics the caller did not
// ask for.
type MissingLocationError struct {
	StopID string
	Name   string
}

func (e *MissingLocationError) Error() string {
	label := e.Name
	if label == "" {
		label = e.StopID
	}
	if label == "" {
		label = "unknown"
	}
	return fmt.Sprintf("stop %q is missing location data", label)
}

// OptimizerError wraps a failed or malformed external optimization
// call. The planner absorbs it and falls back to the greedy sequencer;
// callers only ever see it in logs.
type OptimizerError struct {
	Err error
}

func (e *OptimizerError) Error() string { return "external optimizer: " + e.Err.Error() }

func (e *OptimizerError) Unwrap() error { return e.Err }

// ComputationError reports an internal inconsistency, such as a
// leg-count mismatch after optimization. Fatal for the request.
type ComputationError struct {
	Msg string
}

func (e *ComputationError) Error() string { return e.Msg }
