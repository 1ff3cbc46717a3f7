package validate

import (
	"strconv"
	"strings"
	"time"
)

// Default layout lists, mirroring the formats commonly typed at a
// prompt. Callers can pass their own lists to accept other shapes.
var (
	DateLayouts = []string{"01/02/2006", "01/02/06", "2006/01/02", "06/01/02", "2006-01-02"}
	TimeLayouts = []string{"15:04:05", "15:04"}

	DatetimeLayouts = []string{
		"01/02/2006 15:04:05", "01/02/06 15:04:05", "2006/01/02 15:04:05",
		"06/01/02 15:04:05", "2006-01-02 15:04:05",
		"01/02/2006 15:04", "01/02/06 15:04", "2006/01/02 15:04",
		"06/01/02 15:04", "2006-01-02 15:04",
	}
)

func parseAny(value string, layouts []string) (time.Time, bool) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Date validates a calendar date against layouts (DateLayouts when nil).
func Date(value string, layouts []string, opts *Options) (time.Time, error) {
	if layouts == nil {
		layouts = DateLayouts
	}
	v, done, err := prevalidate(value, opts)
	if err != nil {
		return time.Time{}, err
	}
	if done {
		t, _ := parseAny(v, layouts)
		return t, nil
	}
	t, ok := parseAny(v, layouts)
	if !ok {
		return time.Time{}, fail(v, "'%s' is not a valid date.", v)
	}
	return t, nil
}

// Time validates a time of day against layouts (TimeLayouts when nil).
func Time(value string, layouts []string, opts *Options) (time.Time, error) {
	if layouts == nil {
		layouts = TimeLayouts
	}
	v, done, err := prevalidate(value, opts)
	if err != nil {
		return time.Time{}, err
	}
	if done {
		t, _ := parseAny(v, layouts)
		return t, nil
	}
	t, ok := parseAny(v, layouts)
	if !ok {
		return time.Time{}, fail(v, "'%s' is not a valid time.", v)
	}
	return t, nil
}

// Datetime validates a combined date and time against layouts
// (DatetimeLayouts when nil).
func Datetime(value string, layouts []string, opts *Options) (time.Time, error) {
	if layouts == nil {
		layouts = DatetimeLayouts
	}
	v, done, err := prevalidate(value, opts)
	if err != nil {
		return time.Time{}, err
	}
	if done {
		t, _ := parseAny(v, layouts)
		return t, nil
	}
	t, ok := parseAny(v, layouts)
	if !ok {
		return time.Time{}, fail(v, "'%s' is not a valid date and time.", v)
	}
	return t, nil
}

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Month validates a month given as a number (1-12), a full name, or a
// three-letter abbreviation. It returns the full name in title case.
func Month(value string, opts *Options) (string, error) {
	v, done, err := prevalidate(value, opts)
	if err != nil {
		return "", err
	}
	if done {
		return v, nil
	}
	if n, err := strconv.Atoi(v); err == nil {
		if n >= 1 && n <= 12 {
			return monthNames[n-1], nil
		}
		return "", fail(v, "'%s' is not a month.", v)
	}
	for _, name := range monthNames {
		if strings.EqualFold(name, v) || strings.EqualFold(name[:3], v) {
			return name, nil
		}
	}
	return "", fail(v, "'%s' is not a month.", v)
}

var dayNames = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// DayOfWeek validates a weekday given as a full name or a three-letter
// abbreviation. It returns the full name in title case.
func DayOfWeek(value string, opts *Options) (string, error) {
	v, done, err := prevalidate(value, opts)
	if err != nil {
		return "", err
	}
	if done {
		return v, nil
	}
	for _, name := range dayNames {
		if strings.EqualFold(name, v) || strings.EqualFold(name[:3], v) {
			return name, nil
		}
	}
	return "", fail(v, "'%s' is not a day of the week.", v)
}

// DayOfMonth validates a day number within the given month and year,
// honoring leap years.
func DayOfMonth(value string, year, month int, opts *Options) (int, error) {
	v, done, err := prevalidate(value, opts)
	if err != nil {
		return 0, err
	}
	if done {
		n, _ := strconv.Atoi(v)
		return n, nil
	}
	last := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	n, perr := strconv.Atoi(v)
	if perr != nil || n < 1 || n > last {
		return 0, fail(v, "'%s' is not a day in the month of %s %d.", v, monthNames[month-1], year)
	}
	return n, nil
}
