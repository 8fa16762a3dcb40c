package domain

import (
	"fmt"
	"time"
)

type Availability string

const (
	AvailabilityAvailable   Availability = "available"
	AvailabilityUnavailable Availability = "unavailable"
	AvailabilityUnknown     Availability = "unknown"

	// AvailabilityMaybe is a legacy value older rows may carry. It is
	// accepted by storage but never produced; aggregation treats it as
	// unknown.
	AvailabilityMaybe Availability = "maybe"
)

// ParseAvailability validates a wire status string. Unrecognized values are
// rejected at the boundary instead of being stored as-is.
func ParseAvailability(s string) (Availability, error) {
	switch Availability(s) {
	case AvailabilityAvailable, AvailabilityUnavailable, AvailabilityUnknown, AvailabilityMaybe:
		return Availability(s), nil
	default:
		return "", fmt.Errorf("%w: unknown availability %q", ErrValidation, s)
	}
}

// CountsAsAvailable reports whether the status counts as an available answer.
func (a Availability) CountsAsAvailable() bool {
	return a == AvailabilityAvailable
}

type Participant struct {
	ID      int64
	Name    string
	Comment string
	// Availabilities is keyed by date option id. Absent entries mean
	// unknown.
	Availabilities map[int64]Availability
	SubmittedAt    time.Time
}

type AddParticipantInput struct {
	Name           string
	Comment        string
	Availabilities map[int64]Availability
}
