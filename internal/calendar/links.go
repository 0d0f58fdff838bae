package calendar

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/flourishtalents/backend/internal/models"
)

const googleCalendarBase = "https://calendar.google.com/calendar/render"

var nonWord = regexp.MustCompile(`\W`)

// Filename derives the .ics download name from an event title,
// replacing non-word characters with underscores.
func Filename(title string) string {
	return nonWord.ReplaceAllString(title, "_") + ".ics"
}

func (v VEvent) googleDates() string {
	if v.AllDay {
		return v.Start.UTC().Format(dateLayout) + "/" + v.End.UTC().Format(dateLayout)
	}
	return v.Start.UTC().Format(dateTimeLayout) + "/" + v.End.UTC().Format(dateTimeLayout)
}

// GoogleCalendarURL builds the prefilled event-template deep link. All
// values are URL-encoded by url.Values.
func GoogleCalendarURL(v VEvent) string {
	details := v.Description
	if v.OrganizerName != "" {
		if details != "" {
			details += "\n\n"
		}
		details += "Organized by " + v.OrganizerName
	}

	params := url.Values{}
	params.Set("action", "TEMPLATE")
	params.Set("text", v.Summary)
	params.Set("dates", v.googleDates())
	params.Set("details", details)
	params.Set("location", v.Location)
	return googleCalendarBase + "?" + params.Encode()
}

// AppleCalendarDataURI embeds the rendered ICS text in a data: URI.
// Functionally the same artifact as the file download.
func AppleCalendarDataURI(ics string) string {
	return "data:text/calendar;charset=utf-8," + url.PathEscape(ics)
}

// SummaryText builds the plain multi-line summary handed to the client
// for its best-effort clipboard copy. Missing location and description
// fall back to "TBD" and "No description".
func SummaryText(e models.Event, organizerName string) (string, error) {
	start, err := e.StartsAt()
	if err != nil {
		return "", err
	}

	location := e.Location
	if location == "" {
		location = "TBD"
	}
	description := e.Description
	if description == "" {
		description = "No description"
	}

	lines := []string{
		e.Title,
		start.Format("Monday, January 2, 2006"),
	}
	if !e.IsAllDay() {
		lines = append(lines, start.Format("3:04 PM"))
	}
	lines = append(lines, location)
	if organizerName != "" {
		lines = append(lines, "Organized by "+organizerName)
	}
	lines = append(lines, description)
	return strings.Join(lines, "\n"), nil
}
