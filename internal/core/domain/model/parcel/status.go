package parcel

import (
	"errors"
	"fmt"

	"mailroom/internal/pkg/errs"
)

// ErrInvalidTransition is returned when a status change is not allowed from
// the current status. Callers that observe it hold a stale view of the package.
var ErrInvalidTransition = errors.New("invalid package status transition")

// Status represents the lifecycle state of a package.
//
// State transitions:
//
//	           ┌──> Retrieved
//	Waiting ───┼──> StaffResolved
//	           └──> StaffRemoved
//
// All three targets are terminal. Status is a closed enum: values coming from
// storage or requests must pass Validate (or be parsed with ParseStatus).
type Status int

const (
	// Unknown is the zero value and never a valid status.
	Unknown Status = iota

	// Waiting means the package is registered and not yet collected.
	// Its package number is held out of the pool.
	Waiting

	// Retrieved means the resident picked the package up.
	Retrieved

	// StaffResolved means staff closed the package for another reason
	// (e.g. handed to a roommate, forwarded).
	StaffResolved

	// StaffRemoved means staff removed a package registered by mistake.
	StaffRemoved
)

var statusNames = map[Status]string{
	Waiting:       "WAITING",
	Retrieved:     "RETRIEVED",
	StaffResolved: "STAFF_RESOLVED",
	StaffRemoved:  "STAFF_REMOVED",
}

// transitions lists, per status, the statuses it may move to.
//
//nolint:exhaustive // terminal and unknown statuses have no outgoing transitions
var transitions = map[Status]map[Status]struct{}{
	Waiting: {
		Retrieved:     {},
		StaffResolved: {},
		StaffRemoved:  {},
	},
}

// ParseStatus converts the canonical upper-case name ("WAITING", ...) to a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a package status", s))
}

// Validate checks that s is one of the four known statuses.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical name used in storage and on the wire,
// or "UNKNOWN" for invalid values.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s.Validate() == nil && len(transitions[s]) == 0
}

// CanTransitionTo reports whether target is reachable from s in one step.
func (s Status) CanTransitionTo(target Status) bool {
	_, ok := transitions[s][target]
	return ok
}

// TransitionTo returns target if the move from s is legal.
//
// Returns:
//   - (target, nil) for WAITING -> RETRIEVED | STAFF_RESOLVED | STAFF_REMOVED
//   - (Unknown, error wrapping ErrInvalidTransition) for everything else,
//     including self-transitions and any move back to WAITING
//
// Example:
//
//	next, err := pkg.Status().TransitionTo(parcel.Retrieved)
//	if errors.Is(err, parcel.ErrInvalidTransition) {
//	    // already picked up or removed
//	}
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, target)
	}
	return target, nil
}
