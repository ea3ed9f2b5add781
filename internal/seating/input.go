package seating

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidInput marks caller input the engine cannot run on
var ErrInvalidInput = errors.New("invalid input")

// Accepted departure layouts, tried in order. Layouts without a zone are read in the
// caller-supplied location.
var departureLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"Jan 2, 2006, 3:04 PM",
	"Jan 2, 2006 3:04 PM",
	"January 2, 2006, 3:04 PM",
}

// ParseDeparture parses a departure date and time. loc may be nil, meaning UTC.
func ParseDeparture(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: departure time is required", ErrInvalidInput)
	}

	for _, layout := range departureLayouts {
		if layout == time.RFC3339 {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
			continue
		}
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: unrecognised departure time %q", ErrInvalidInput, s)
}

// ParseDurationHours parses a flight duration in hours
func ParseDurationHours(s string) (float64, error) {
	h, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: duration must be a number of hours: %q", ErrInvalidInput, s)
	}
	if err := ValidateDurationHours(h); err != nil {
		return 0, err
	}
	return h, nil
}

// ValidateDurationHours rejects zero, negative and non-finite durations
func ValidateDurationHours(h float64) error {
	if math.IsNaN(h) || math.IsInf(h, 0) || h <= 0 {
		return fmt.Errorf("%w: duration must be a positive number of hours, got %v", ErrInvalidInput, h)
	}
	return nil
}
