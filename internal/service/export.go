package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MuNeNICK/ScheduleN/internal/domain"
	"github.com/MuNeNICK/ScheduleN/internal/ical"
	"github.com/MuNeNICK/ScheduleN/internal/service/ports"
)

// uidDomain suffixes generated VEVENT UIDs.
const uidDomain = "schedulen.app"

type ExportService struct {
	events ports.EventRepo
	now    func() time.Time
}

func NewExportService(events ports.EventRepo) *ExportService {
	return &ExportService{
		events: events,
		now:    time.Now,
	}
}

// ICal renders the event's confirmed date options as a downloadable
// calendar file. It fails with ErrNoConfirmedDates when nothing is
// confirmed; confirmed ids that no longer resolve to a date option are
// skipped silently.
func (s *ExportService) ICal(ctx context.Context, eventID string) (*domain.ICalExport, error) {
	event, resolved, err := s.confirmedOptions(ctx, eventID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	icalEvents := make([]ical.Event, 0, len(resolved))
	for _, option := range resolved {
		icalEvents = append(icalEvents, s.exportEvent(event, option, now))
	}

	content, err := ical.Calendar(icalEvents, now)
	if err != nil {
		return nil, fmt.Errorf("generate ical: %w", err)
	}

	return &domain.ICalExport{
		Filename: exportFilename(event.Title),
		Content:  content,
	}, nil
}

// CalendarLinks builds one Google Calendar deep link per resolvable
// confirmed date option, under the same gating rules as ICal.
func (s *ExportService) CalendarLinks(ctx context.Context, eventID string) ([]domain.CalendarLink, error) {
	event, resolved, err := s.confirmedOptions(ctx, eventID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	links := make([]domain.CalendarLink, 0, len(resolved))
	for _, option := range resolved {
		url, err := ical.GoogleCalendarURL(s.exportEvent(event, option, now))
		if err != nil {
			return nil, fmt.Errorf("google calendar url: %w", err)
		}
		links = append(links, domain.CalendarLink{DateOptionID: option.ID, URL: url})
	}

	return links, nil
}

func (s *ExportService) confirmedOptions(ctx context.Context, eventID string) (*domain.Event, []domain.DateOption, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, nil, fmt.Errorf("get event: %w", err)
	}
	if len(event.ConfirmedDateOptionIDs) == 0 {
		return nil, nil, domain.ErrNoConfirmedDates
	}

	var resolved []domain.DateOption
	for _, id := range event.ConfirmedDateOptionIDs {
		if option, ok := event.FindDateOption(id); ok {
			resolved = append(resolved, option)
		}
	}

	return event, resolved, nil
}

func (s *ExportService) exportEvent(event *domain.Event, option domain.DateOption, now time.Time) ical.Event {
	return ical.Event{
		UID:         fmt.Sprintf("%s-%d-%d@%s", event.ID, option.ID, now.UnixMilli(), uidDomain),
		Title:       event.Title,
		Description: event.Description,
		Attendees:   event.AvailableParticipants(option.ID),
		Date:        option.Datetime,
		StartTime:   option.StartTime,
		EndTime:     option.EndTime,
	}
}

// exportFilename turns the event title into a safe attachment name.
func exportFilename(title string) string {
	sanitized := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, title)

	return sanitized + ".ics"
}
