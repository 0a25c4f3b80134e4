package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// DefaultTimezone is the display timezone used when none is configured.
const DefaultTimezone = "Europe/Helsinki"

// Layouts accepted for upstream kickoff timestamps. The feed usually omits
// seconds ("2025-01-12T18:00Z") but full RFC 3339 shows up too.
var kickoffLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
}

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ResolveLocation loads a timezone by name, falling back to the default and
// then to UTC. It never fails; an unresolvable name degrades to UTC display.
func ResolveLocation(name string) *time.Location {
	if name == "" {
		name = DefaultTimezone
	}
	if loc, err := time.LoadLocation(name); err == nil {
		return loc
	}
	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}

// ParseKickoff parses an upstream kickoff timestamp.
func ParseKickoff(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range kickoffLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// LocalClock renders a kickoff timestamp as a local wall-clock time
// ("23:15"). Unparseable input is returned unchanged so the caller always
// has something to display.
func LocalClock(value string, loc *time.Location) string {
	t, err := ParseKickoff(value)
	if err != nil {
		return value
	}
	return t.In(loc).Format("15:04")
}

// LocalDateClock renders a kickoff timestamp with its local weekday and date
// ("Wed 20.08. 23:15"). Unparseable input is returned unchanged.
func LocalDateClock(value string, loc *time.Location) string {
	t, err := ParseKickoff(value)
	if err != nil {
		return value
	}
	return t.In(loc).Format("Mon 02.01. 15:04")
}
