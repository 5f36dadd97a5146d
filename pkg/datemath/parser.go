package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser converts date filter strings (absolute or relative) to day boundaries.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Tokyo"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

var inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

// ParseDay converts a date string to the start of that day.
// Accepts "2006-01-02" absolute dates and the relative forms
// "today", "tomorrow", "yesterday", "in N days/weeks/months".
// The baseTime is the reference point for relative forms (usually time.Now()).
func (p *Parser) ParseDay(value string, baseTime time.Time) (time.Time, error) {
	value = strings.ToLower(strings.TrimSpace(value))

	switch value {
	case "":
		return time.Time{}, fmt.Errorf("empty date")
	case "today":
		return p.StartOfDay(baseTime), nil
	case "tomorrow":
		return p.StartOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.StartOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	if matches := inDurationRe.FindStringSubmatch(value); matches != nil {
		amount, _ := strconv.Atoi(matches[1])
		switch {
		case strings.HasPrefix(matches[2], "day"):
			return p.StartOfDay(baseTime.AddDate(0, 0, amount)), nil
		case strings.HasPrefix(matches[2], "week"):
			return p.StartOfDay(baseTime.AddDate(0, 0, amount*7)), nil
		default:
			return p.StartOfDay(baseTime.AddDate(0, amount, 0)), nil
		}
	}

	t, err := time.ParseInLocation("2006-01-02", value, p.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return t, nil
}

// DayRange returns the [start, next) boundaries of the day the value names.
// The half-open interval is what SQL range filters expect.
func (p *Parser) DayRange(value string, baseTime time.Time) (time.Time, time.Time, error) {
	start, err := p.ParseDay(value, baseTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, start.AddDate(0, 0, 1), nil
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
