package dto

import (
	"strconv"
	"time"

	"github.com/MuNeNICK/ScheduleN/internal/domain"
)

type EventResponse struct {
	ID                     string                `json:"id"`
	Title                  string                `json:"title"`
	Description            string                `json:"description"`
	PasswordProtected      bool                  `json:"passwordProtected"`
	DateOptions            []DateOptionResponse  `json:"dateOptions"`
	Participants           []ParticipantResponse `json:"participants"`
	ConfirmedDateOptionIDs []int64               `json:"confirmedDateOptionIds"`
	CreatedAt              string                `json:"createdAt"`
}

// LimitedEventResponse is what unauthenticated callers see of a
// password-protected event.
type LimitedEventResponse struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	PasswordProtected bool   `json:"passwordProtected"`
	CreatedAt         string `json:"createdAt"`
}

type DateOptionResponse struct {
	ID        int64  `json:"id"`
	Datetime  string `json:"datetime"`
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
	Formatted string `json:"formatted"`
}

type ParticipantResponse struct {
	ID             int64             `json:"id"`
	Name           string            `json:"name"`
	Comment        string            `json:"comment,omitempty"`
	Availabilities map[string]string `json:"availabilities"`
	SubmittedAt    string            `json:"submittedAt"`
}

type CreateEventResponse struct {
	ID string `json:"id"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type ConfirmResponse struct {
	Success   bool `json:"success"`
	Confirmed bool `json:"confirmed"`
}

type ValidatePasswordResponse struct {
	Valid bool `json:"valid"`
}

type CalendarLinkResponse struct {
	DateOptionID int64  `json:"dateOptionId"`
	URL          string `json:"url"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	options := make([]DateOptionResponse, 0, len(e.DateOptions))
	for _, o := range e.DateOptions {
		options = append(options, DateOptionResponse{
			ID:        o.ID,
			Datetime:  o.Datetime,
			StartTime: o.StartTime,
			EndTime:   o.EndTime,
			Formatted: o.Formatted,
		})
	}

	participants := make([]ParticipantResponse, 0, len(e.Participants))
	for i := range e.Participants {
		participants = append(participants, ToParticipantResponse(&e.Participants[i]))
	}

	confirmed := e.ConfirmedDateOptionIDs
	if confirmed == nil {
		confirmed = []int64{}
	}

	return EventResponse{
		ID:                     e.ID,
		Title:                  e.Title,
		Description:            e.Description,
		PasswordProtected:      e.PasswordProtected(),
		DateOptions:            options,
		Participants:           participants,
		ConfirmedDateOptionIDs: confirmed,
		CreatedAt:              e.CreatedAt.Format(time.RFC3339),
	}
}

func ToLimitedEventResponse(e *domain.Event) LimitedEventResponse {
	return LimitedEventResponse{
		ID:                e.ID,
		Title:             e.Title,
		Description:       e.Description,
		PasswordProtected: true,
		CreatedAt:         e.CreatedAt.Format(time.RFC3339),
	}
}

func ToParticipantResponse(p *domain.Participant) ParticipantResponse {
	availabilities := make(map[string]string, len(p.Availabilities))
	for dateOptionID, availability := range p.Availabilities {
		availabilities[strconv.FormatInt(dateOptionID, 10)] = string(availability)
	}

	return ParticipantResponse{
		ID:             p.ID,
		Name:           p.Name,
		Comment:        p.Comment,
		Availabilities: availabilities,
		SubmittedAt:    p.SubmittedAt.Format(time.RFC3339),
	}
}

func ToCalendarLinkResponses(links []domain.CalendarLink) []CalendarLinkResponse {
	res := make([]CalendarLinkResponse, 0, len(links))
	for _, l := range links {
		res = append(res, CalendarLinkResponse{DateOptionID: l.DateOptionID, URL: l.URL})
	}
	return res
}
