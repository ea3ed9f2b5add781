// Package solar approximates where the sun is from the local time of day.
//
// The model is a piecewise-linear function of hour only: date, season and the observer's
// longitude are ignored. It is good enough to pick an aircraft side, nothing more.
package solar

import (
	"math"
	"time"

	"github.com/yegors/seat-side/internal/physics"
)

const (
	Sunrise      = 6.0  // hour the model treats as sunrise
	Sunset       = 18.0 // hour the model treats as sunset
	SolarNoon    = 12.0
	MaxElevation = 60.0 // degrees at solar noon
	degPerHour   = 15.0
)

// Snapshot is the modelled sun position at one instant and place
type Snapshot struct {
	AzimuthDeg     float64 `json:"azimuth_deg"`
	ElevationDeg   float64 `json:"elevation_deg"`
	TimeOfDayHours float64 `json:"time_of_day_hours"`
	IsDaytime      bool    `json:"is_daytime"`
}

// TimeOfDay returns hours since midnight in t's own location, minute resolution
func TimeOfDay(t time.Time) float64 {
	return float64(t.Hour()) + float64(t.Minute())/60
}

// SnapshotAt returns the modelled sun position for the instant. The location is accepted so
// callers pass where the observer is, but the current model does not use it.
func SnapshotAt(t time.Time, _ physics.Coordinate) Snapshot {
	return SnapshotForHour(TimeOfDay(t))
}

// SnapshotForHour evaluates the model for an hour of day in [0, 24)
func SnapshotForHour(hour float64) Snapshot {
	return Snapshot{
		AzimuthDeg:     Azimuth(hour),
		ElevationDeg:   Elevation(hour),
		TimeOfDayHours: hour,
		IsDaytime:      hour >= Sunrise && hour <= Sunset,
	}
}

// Azimuth is 15 degrees per hour, east (90) at 06:00 and west (270) at 18:00
func Azimuth(hour float64) float64 {
	switch {
	case hour < Sunrise:
		return 90 - (Sunrise-hour)*degPerHour
	case hour < Sunset:
		return 90 + (hour-Sunrise)*degPerHour
	default:
		return 270 + (hour-Sunset)*degPerHour
	}
}

// Elevation is zero at night and follows a cosine peaking at MaxElevation at noon
func Elevation(hour float64) float64 {
	if hour < Sunrise || hour > Sunset {
		return 0
	}
	return MaxElevation * math.Cos(math.Abs(hour-SolarNoon)*math.Pi/12)
}
