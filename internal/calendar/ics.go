// Package calendar renders events into RFC 5545 calendar artifacts: an
// iCalendar block for download, deep links for Google and Apple
// Calendar, and a plain-text summary for the clipboard.
package calendar

import (
	"strings"
	"time"

	"github.com/flourishtalents/backend/internal/models"
)

const (
	prodID    = "-//Event App//EventApp//EN"
	uidDomain = "eventapp.example.com"

	// DefaultDuration is assumed for timed events; the data model
	// carries no duration field.
	DefaultDuration = 2 * time.Hour

	// ContentType is the MIME type for .ics downloads.
	ContentType = "text/calendar;charset=utf-8"

	dateLayout     = "20060102"
	dateTimeLayout = "20060102T150405Z"
)

// VEvent is the typed form of the single VEVENT the exporter emits.
// Field assembly (FromEvent) is kept separate from serialization
// (Render) so the escaping rule stays centralized and testable.
type VEvent struct {
	UID            string
	Summary        string
	Description    string
	Location       string
	OrganizerName  string
	OrganizerEmail string
	Start          time.Time
	End            time.Time
	AllDay         bool
}

// FromEvent maps an event onto a VEvent. The UID is derived from the
// event id alone, so repeated exports of the same event are idempotent.
// Timed events get a fixed two-hour duration; all-day events span one
// calendar day.
func FromEvent(e models.Event, organizerName, organizerEmail string) (VEvent, error) {
	start, err := e.StartsAt()
	if err != nil {
		return VEvent{}, err
	}

	v := VEvent{
		UID:            e.ID.String() + "@" + uidDomain,
		Summary:        e.Title,
		Description:    e.Description,
		Location:       e.Location,
		OrganizerName:  organizerName,
		OrganizerEmail: organizerEmail,
		Start:          start,
		AllDay:         e.IsAllDay(),
	}
	if v.AllDay {
		v.End = start.AddDate(0, 0, 1)
	} else {
		v.End = start.Add(DefaultDuration)
	}
	return v, nil
}

// Escape applies the RFC 5545 TEXT escaping rule to a free-text value.
// Backslash is replaced first so the characters introduced by the later
// passes are not escaped twice.
func Escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, ",", `\,`)
	s = strings.ReplaceAll(s, ";", `\;`)
	return s
}

// Unescape is the exact inverse of Escape.
func Unescape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 'n', 'N':
			b.WriteByte('\n')
		case '\\', ',', ';':
			b.WriteByte(s[i])
		default:
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// Render serializes the VEvent into a complete VCALENDAR block. The
// DTSTAMP is taken from now on every call; everything else is
// deterministic for a given VEvent.
func (v VEvent) Render(now time.Time) string {
	var b strings.Builder
	line := func(s string) {
		b.WriteString(s)
		b.WriteString("\r\n")
	}

	line("BEGIN:VCALENDAR")
	line("VERSION:2.0")
	line("PRODID:" + prodID)
	line("CALSCALE:GREGORIAN")
	line("METHOD:PUBLISH")
	line("X-WR-CALNAME:Event Calendar")
	line("X-WR-TIMEZONE:UTC")
	line("BEGIN:VEVENT")
	line("UID:" + v.UID)
	line("DTSTAMP:" + now.UTC().Format(dateTimeLayout))
	if v.AllDay {
		line("DTSTART;VALUE=DATE:" + v.Start.UTC().Format(dateLayout))
		line("DTEND;VALUE=DATE:" + v.End.UTC().Format(dateLayout))
	} else {
		line("DTSTART:" + v.Start.UTC().Format(dateTimeLayout))
		line("DTEND:" + v.End.UTC().Format(dateTimeLayout))
	}
	line("SUMMARY:" + Escape(v.Summary))
	line("DESCRIPTION:" + Escape(v.Description))
	line("LOCATION:" + Escape(v.Location))
	if v.OrganizerName != "" {
		// The line keeps its colon even without an email so strict
		// parsers still accept the property.
		org := "ORGANIZER;CN=" + Escape(v.OrganizerName) + ":"
		if v.OrganizerEmail != "" {
			org += "mailto:" + v.OrganizerEmail
		}
		line(org)
	}
	line("STATUS:CONFIRMED")
	line("SEQUENCE:0")
	line("END:VEVENT")
	line("END:VCALENDAR")
	return b.String()
}
