package weather

import (
	"strings"
	"time"
)

// DefaultDisplayZone is the zone the dashboard renders times in unless configured.
const DefaultDisplayZone = "Asia/Kolkata"

// Layouts accepted for location-local timestamps, most common first.
var localLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// FormattedTime is the display triple for a timestamp.
type FormattedTime struct {
	Day  string `json:"day"`  // "Monday"
	Date string `json:"date"` // "Oct 21, 2024"
	Time string `json:"time"` // "9:05 PM"
}

// TimeFormatter renders location-local timestamps. Strings are read as wall
// clock time in the display zone; no conversion between zones happens.
type TimeFormatter struct {
	loc *time.Location
}

// NewTimeFormatter returns a formatter for the given zone; nil means UTC.
func NewTimeFormatter(loc *time.Location) *TimeFormatter {
	if loc == nil {
		loc = time.UTC
	}
	return &TimeFormatter{loc: loc}
}

// Location returns the display zone.
func (f *TimeFormatter) Location() *time.Location {
	return f.loc
}

// Parse reads a location-local timestamp in the display zone.
func (f *TimeFormatter) Parse(timestamp string) (time.Time, bool) {
	return parseLocal(timestamp, f.loc)
}

// Format returns the weekday, date and clock strings for timestamp. Empty or
// unparseable input gives an all-empty FormattedTime.
func (f *TimeFormatter) Format(timestamp string) FormattedTime {
	t, ok := f.Parse(timestamp)
	if !ok {
		return FormattedTime{}
	}
	return FormattedTime{
		Day:  t.Format("Monday"),
		Date: t.Format("Jan 2, 2006"),
		Time: t.Format("3:04 PM"),
	}
}

// FormatHour is the label of an hourly card ("3:00 PM").
func (f *TimeFormatter) FormatHour(timestamp string) string {
	t, ok := f.Parse(timestamp)
	if !ok {
		return ""
	}
	return t.Format("3:04 PM")
}

// FormatDay is the label of a daily card ("Mon, Oct 21").
func (f *TimeFormatter) FormatDay(date string) string {
	t, ok := f.Parse(date)
	if !ok {
		return ""
	}
	return t.Format("Mon, Jan 2")
}

// LocalHour extracts the hour-of-day from a location-local timestamp.
func LocalHour(timestamp string) (int, bool) {
	t, ok := parseLocal(timestamp, time.UTC)
	if !ok {
		return 0, false
	}
	return t.Hour(), true
}

func parseLocal(timestamp string, loc *time.Location) (time.Time, bool) {
	s := strings.TrimSpace(timestamp)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
