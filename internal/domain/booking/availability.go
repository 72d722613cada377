package booking

import (
	"fmt"

	"github.com/google/uuid"
)

// ReservationStatus tracks the lifecycle of a persisted booking.
type ReservationStatus string

const (
	StatusDraft      ReservationStatus = "draft"
	StatusBooked     ReservationStatus = "booked"
	StatusCheckedIn  ReservationStatus = "checked_in"
	StatusCheckedOut ReservationStatus = "checked_out"
	StatusCompleted  ReservationStatus = "completed"
	StatusCancelled  ReservationStatus = "cancelled"
)

// Blocking reports whether a reservation in this status occupies its slot.
// Drafts and cancellations do not.
func (s ReservationStatus) Blocking() bool {
	return s != StatusDraft && s != StatusCancelled
}

// ReservationWindow is the slice of a persisted booking the availability
// check needs: its slot, status and identity (for reschedule exclusion).
type ReservationWindow struct {
	ID       uuid.UUID
	Interval Interval
	Status   ReservationStatus
}

// Block is a host-blocked interval on a space's calendar.
type Block struct {
	Interval Interval
}

// Policy is the per-space availability policy.
type Policy struct {
	MinStayHours int
	// Optional daily window; both bounds are clock hours (0-23). Nil means
	// the space has no daily window restriction.
	AvailableFromHour *int
	AvailableToHour   *int
}

// RejectReason identifies why a candidate interval was refused.
type RejectReason string

const (
	ReasonMinStay             RejectReason = "MinStayViolation"
	ReasonOutsideWindow       RejectReason = "OutsideAvailabilityWindow"
	ReasonReservationConflict RejectReason = "ReservationConflict"
	ReasonBlockConflict       RejectReason = "BlockConflict"
)

// Rejection is a structured availability refusal. It is an error so
// callers can propagate it, but it represents a client-facing outcome
// rather than a server fault.
type Rejection struct {
	Reason  RejectReason
	Message string
}

func (r *Rejection) Error() string {
	return string(r.Reason) + ": " + r.Message
}

// AvailabilityQuery bundles the inputs of one availability check. The
// reservation and block lists are snapshots supplied by the caller;
// ExcludeReservation skips the booking being rescheduled, if any.
type AvailabilityQuery struct {
	SpaceID            uuid.UUID
	Candidate          Interval
	Policy             Policy
	Reservations       []ReservationWindow
	Blocks             []Block
	ExcludeReservation uuid.UUID
}

// CheckAvailability decides whether a candidate interval can be booked.
// It returns nil on acceptance and a *Rejection carrying one of the four
// reason codes otherwise. The check is a pure predicate: it reads no
// clock and mutates nothing.
func CheckAvailability(q AvailabilityQuery) *Rejection {
	if hours := q.Candidate.DurationHours(); hours < q.Policy.MinStayHours {
		return &Rejection{
			Reason:  ReasonMinStay,
			Message: fmt.Sprintf("minimum stay is %d hours, requested %d", q.Policy.MinStayHours, hours),
		}
	}

	if from, to := q.Policy.AvailableFromHour, q.Policy.AvailableToHour; from != nil && to != nil {
		startHour := q.Candidate.Start().Hour()
		endHour := q.Candidate.End().Hour()
		if startHour < *from || endHour > *to {
			return &Rejection{
				Reason:  ReasonOutsideWindow,
				Message: fmt.Sprintf("space is only available from %02d:00 to %02d:00", *from, *to),
			}
		}
	}

	for _, r := range q.Reservations {
		if r.ID == q.ExcludeReservation && q.ExcludeReservation != uuid.Nil {
			continue
		}
		if !r.Status.Blocking() {
			continue
		}
		if q.Candidate.Overlaps(r.Interval) {
			return &Rejection{
				Reason:  ReasonReservationConflict,
				Message: "selected times overlap an existing booking",
			}
		}
	}

	for _, b := range q.Blocks {
		if q.Candidate.Overlaps(b.Interval) {
			return &Rejection{
				Reason:  ReasonBlockConflict,
				Message: "selected times fall in a blocked period",
			}
		}
	}

	return nil
}
