package domain

import "time"

// DateOptionDateLayout is the merge key format for date options. Rewriting an
// event's date-option set keeps participant answers for options whose
// datetime, in exactly this format, survives the rewrite.
const DateOptionDateLayout = "2006-01-02"

// DateOptionTimeLayout is the wall-clock format of StartTime/EndTime.
const DateOptionTimeLayout = "15:04"

// Event is the domain model; the wire representation lives in handler/dto.
type Event struct {
	ID           string
	Title        string
	Description  string
	PasswordHash string
	DateOptions  []DateOption
	Participants []Participant
	// ConfirmedDateOptionIDs is the organizer's confirmed set. Membership
	// only, no ordering guarantees beyond id ascending.
	ConfirmedDateOptionIDs []int64
	CreatedAt              time.Time
}

// PasswordProtected reports whether full reads require a validated session.
func (e *Event) PasswordProtected() bool {
	return e.PasswordHash != ""
}

// DateOption is one candidate slot. Ids are surrogate and stable only until
// the owning event's date-option set is rewritten.
type DateOption struct {
	ID       int64
	Datetime string // YYYY-MM-DD, naive local date
	// StartTime/EndTime are naive local wall-clock strings (HH:MM).
	// Empty StartTime means the option is all-day.
	StartTime string
	EndTime   string
	Formatted string // caller-provided display label, opaque here
}

// FindDateOption resolves an option by id. Second result is false when the
// id does not belong to this event.
func (e *Event) FindDateOption(id int64) (DateOption, bool) {
	for _, o := range e.DateOptions {
		if o.ID == id {
			return o, true
		}
	}
	return DateOption{}, false
}

// AvailableParticipants returns the names of participants marked available
// for the given date option, in participant order.
func (e *Event) AvailableParticipants(dateOptionID int64) []string {
	var names []string
	for _, p := range e.Participants {
		if p.Availabilities[dateOptionID].CountsAsAvailable() {
			names = append(names, p.Name)
		}
	}
	return names
}

type DateOptionInput struct {
	Datetime  string
	StartTime string
	EndTime   string
	Formatted string
}

type CreateEventInput struct {
	ID          string
	Title       string
	Description string
	Password    string
	DateOptions []DateOptionInput
}

// UpdateEventInput is a partial update: nil fields are left untouched.
// A non-nil empty Password clears the password, making the event open.
// Non-nil DateOptions replaces the full set, preserving answers by datetime.
type UpdateEventInput struct {
	Title       *string
	Description *string
	Password    *string
	DateOptions []DateOptionInput
}

// IsEmpty reports whether the update would touch nothing.
func (u UpdateEventInput) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Password == nil && u.DateOptions == nil
}

// ICalExport is a generated calendar file ready to be served as an attachment.
type ICalExport struct {
	Filename string
	Content  string
}

// CalendarLink is a Google Calendar deep link for one confirmed date option.
type CalendarLink struct {
	DateOptionID int64
	URL          string
}
