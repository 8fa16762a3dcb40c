// Package ical renders confirmed date options as RFC 5545-flavored calendar
// text and Google Calendar deep links.
//
// Timed options are rendered as naive local time (YYYYMMDDTHHMMSS, no Z):
// the application has no timezone model, wall clock in equals wall clock
// out. All-day options use the VALUE=DATE form with iCal's exclusive end
// date convention.
package ical

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

const (
	prodID = "-//ScheduleN//ScheduleN App//EN"

	dateLayout      = "2006-01-02"
	timeLayout      = "15:04"
	stampLayout     = "20060102T150405"
	dateOnlyLayout  = "20060102"
	defaultDuration = 60 * time.Minute
)

// Event is one VEVENT to render. StartTime empty means all-day; EndTime
// empty with StartTime set defaults to one hour after the start.
type Event struct {
	UID         string
	Title       string
	Description string
	Attendees   []string
	Date        string // YYYY-MM-DD
	StartTime   string // HH:MM, naive local
	EndTime     string // HH:MM, naive local
}

// Calendar renders a complete VCALENDAR containing one VEVENT per event.
// now is the generation time used for DTSTAMP (rendered in UTC). An empty
// events slice yields a valid calendar with no VEVENT blocks.
func Calendar(events []Event, now time.Time) (string, error) {
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:" + prodID,
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
	}

	dtstamp := now.UTC().Format(stampLayout) + "Z"
	for _, e := range events {
		start, end, allDay, err := e.span()
		if err != nil {
			return "", err
		}

		lines = append(lines,
			"BEGIN:VEVENT",
			"UID:"+e.UID,
			"DTSTAMP:"+dtstamp,
		)
		if allDay {
			lines = append(lines,
				"DTSTART;VALUE=DATE:"+start.Format(dateOnlyLayout),
				"DTEND;VALUE=DATE:"+end.Format(dateOnlyLayout),
			)
		} else {
			lines = append(lines,
				"DTSTART:"+start.Format(stampLayout),
				"DTEND:"+end.Format(stampLayout),
			)
		}
		lines = append(lines, "SUMMARY:"+escapeText(e.Title))
		if details := e.details(); details != "" {
			lines = append(lines, "DESCRIPTION:"+escapeText(details))
		}
		lines = append(lines,
			"STATUS:CONFIRMED",
			"END:VEVENT",
		)
	}

	lines = append(lines, "END:VCALENDAR")
	return strings.Join(lines, "\r\n") + "\r\n", nil
}

// GoogleCalendarURL builds a calendar.google.com render link for the event,
// using the same start/end forms as the ICS output.
func GoogleCalendarURL(e Event) (string, error) {
	start, end, allDay, err := e.span()
	if err != nil {
		return "", err
	}

	var dates string
	if allDay {
		dates = start.Format(dateOnlyLayout) + "/" + end.Format(dateOnlyLayout)
	} else {
		dates = start.Format(stampLayout) + "/" + end.Format(stampLayout)
	}

	params := url.Values{}
	params.Set("action", "TEMPLATE")
	params.Set("text", e.Title)
	params.Set("dates", dates)
	params.Set("details", e.details())

	return "https://calendar.google.com/calendar/render?" + params.Encode(), nil
}

// span resolves the concrete start/end of the event. All-day events span
// [date, next day) per the exclusive-end convention.
func (e Event) span() (start, end time.Time, allDay bool, err error) {
	day, err := time.Parse(dateLayout, e.Date)
	if err != nil {
		return time.Time{}, time.Time{}, false, fmt.Errorf("parse date %q: %w", e.Date, err)
	}

	if e.StartTime == "" {
		return day, day.AddDate(0, 0, 1), true, nil
	}

	startClock, err := time.Parse(timeLayout, e.StartTime)
	if err != nil {
		return time.Time{}, time.Time{}, false, fmt.Errorf("parse start time %q: %w", e.StartTime, err)
	}
	start = day.Add(time.Duration(startClock.Hour())*time.Hour + time.Duration(startClock.Minute())*time.Minute)

	if e.EndTime == "" {
		return start, start.Add(defaultDuration), false, nil
	}
	endClock, err := time.Parse(timeLayout, e.EndTime)
	if err != nil {
		return time.Time{}, time.Time{}, false, fmt.Errorf("parse end time %q: %w", e.EndTime, err)
	}
	end = day.Add(time.Duration(endClock.Hour())*time.Hour + time.Duration(endClock.Minute())*time.Minute)

	return start, end, false, nil
}

// details is the description with the attendee list appended when present.
func (e Event) details() string {
	if len(e.Attendees) == 0 {
		return e.Description
	}
	suffix := "Attendees: " + strings.Join(e.Attendees, ", ")
	if e.Description == "" {
		return suffix
	}
	return e.Description + "\n\n" + suffix
}

// escapeText escapes iCal TEXT values: backslash, semicolon and comma get a
// backslash prefix, newlines become the literal two-character sequence \n,
// carriage returns are dropped.
func escapeText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, ";", `\;`)
	s = strings.ReplaceAll(s, ",", `\,`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return s
}
