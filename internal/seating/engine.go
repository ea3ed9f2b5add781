// Package seating turns flight geometry and the modelled sun position into seat advice.
package seating

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/yegors/seat-side/internal/airports"
	"github.com/yegors/seat-side/internal/physics"
	"github.com/yegors/seat-side/internal/solar"
	"github.com/yegors/seat-side/pkg/logger"
)

const (
	// LongHaulHours is the duration above which the mobility rule fires
	LongHaulHours = 6.0
	// HighSunElevation is the mid-flight elevation above which the shade rule fires
	HighSunElevation = 30.0
)

// Recommendation is one line of advice, consumed verbatim by the display layer
type Recommendation struct {
	SeatSide       string `json:"seat_side"`
	Recommendation string `json:"recommendation"`
	Reason         string `json:"reason"`
}

// Flight is the engine input
type Flight struct {
	Source        airports.Airport
	Destination   airports.Airport
	Departure     time.Time
	DurationHours float64
}

// Arrival returns departure plus duration
func (f Flight) Arrival() time.Time {
	return f.Departure.Add(hoursToDuration(f.DurationHours))
}

// MidFlight returns the instant half way through the flight
func (f Flight) MidFlight() time.Time {
	return f.Departure.Add(hoursToDuration(f.DurationHours / 2))
}

func hoursToDuration(h float64) time.Duration {
	return time.Duration(h * float64(time.Hour))
}

// Analysis holds every signal the rule table reads
type Analysis struct {
	Bearing          physics.FlightBearing `json:"bearing"`
	Departure        solar.Snapshot        `json:"departure_sun"`
	Arrival          solar.Snapshot        `json:"arrival_sun"`
	MidFlight        solar.Snapshot        `json:"midflight_sun"`
	MidpointPosition physics.Coordinate    `json:"midpoint"`
	Exposure         Exposure              `json:"exposure"`
	DurationHours    float64               `json:"duration_hours"`
}

// Options configures an Engine
type Options struct {
	// MagneticVariation adds the magnetic course at the origin to the bearing output
	MagneticVariation bool
}

// Engine evaluates the rule table. It holds no per-query state and is safe for concurrent use.
type Engine struct {
	options Options
	rules   []rule
	logger  *logger.Logger
}

// NewEngine creates a recommendation engine
func NewEngine(options Options, log *logger.Logger) *Engine {
	return &Engine{
		options: options,
		rules:   defaultRules,
		logger:  log.Named("seating"),
	}
}

// Analyze computes bearing, the three sun snapshots and exposure for a flight
func (e *Engine) Analyze(f Flight) Analysis {
	src := f.Source.Position()
	dst := f.Destination.Position()
	mid := physics.Midpoint(src, dst)

	bearing := physics.Bearing(src, dst)
	if e.options.MagneticVariation {
		if declination, err := physics.MagneticVariation(src, 0, f.Departure); err == nil {
			magnetic := physics.MagneticCourse(bearing.Degrees, declination)
			bearing.MagneticDegrees = &magnetic
		} else {
			e.logger.Debug("Magnetic variation unavailable",
				logger.String("airport", f.Source.Code),
				logger.Error(err))
		}
	}

	midSun := solar.SnapshotAt(f.MidFlight(), mid)

	return Analysis{
		Bearing:          bearing,
		Departure:        solar.SnapshotAt(f.Departure, src),
		Arrival:          solar.SnapshotAt(f.Arrival(), dst),
		MidFlight:        midSun,
		MidpointPosition: mid,
		Exposure:         ClassifyExposure(bearing.Degrees, midSun.AzimuthDeg),
		DurationHours:    f.DurationHours,
	}
}

// Evaluate runs the rule table in order. The result is a new slice on every call.
func (e *Engine) Evaluate(a Analysis) []Recommendation {
	out := make([]Recommendation, 0, len(e.rules))
	for _, r := range e.rules {
		if r.applies(a) {
			out = append(out, r.build(a))
		}
	}
	return out
}

// Recommend analyses the flight and returns the ordered recommendations
func (e *Engine) Recommend(f Flight) []Recommendation {
	a := e.Analyze(f)
	recs := e.Evaluate(a)

	e.logger.Debug("Generated seat recommendations",
		logger.String("source", f.Source.Code),
		logger.String("destination", f.Destination.Code),
		logger.Float64("bearing", a.Bearing.Degrees),
		logger.String("compass", a.Bearing.Compass),
		logger.Int("count", len(recs)))

	return recs
}

// ------------------------------------------------------------------------------------------------
// RULE TABLE
// ------------------------------------------------------------------------------------------------

// rule is one predicate/builder pair. At most one recommendation per rule.
type rule struct {
	name    string
	applies func(Analysis) bool
	build   func(Analysis) Recommendation
}

func percent(fraction float64) int {
	return int(math.Round(fraction * 100))
}

func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}

// defaultRules is evaluated top to bottom. The day/night rules are mutually exclusive, as
// are the eastbound/westbound rules. A day-flight aisle recommendation and a directional
// window recommendation can both appear; the list keeps both.
var defaultRules = []rule{
	{
		name:    "left-exposed",
		applies: func(a Analysis) bool { return a.Exposure.LeftFraction > 0 },
		build: func(a Analysis) Recommendation {
			return Recommendation{
				SeatSide:       "Left",
				Recommendation: "Window seat on the right side",
				Reason: fmt.Sprintf("The left side of the aircraft will be exposed to direct sunlight for %d%% of the flight. Choose the right side for better comfort.",
					percent(a.Exposure.LeftFraction)),
			}
		},
	},
	{
		name:    "right-exposed",
		applies: func(a Analysis) bool { return a.Exposure.RightFraction > 0 },
		build: func(a Analysis) Recommendation {
			return Recommendation{
				SeatSide:       "Right",
				Recommendation: "Window seat on the left side",
				Reason: fmt.Sprintf("The right side of the aircraft will be exposed to direct sunlight for %d%% of the flight. Choose the left side for better comfort.",
					percent(a.Exposure.RightFraction)),
			}
		},
	},
	{
		name:    "day-flight",
		applies: func(a Analysis) bool { return a.Departure.IsDaytime && a.Arrival.IsDaytime },
		build: func(Analysis) Recommendation {
			return Recommendation{
				SeatSide:       "Day Flight",
				Recommendation: "Aisle seat preferred",
				Reason:         "Both departure and arrival are during daylight hours. Aisle seats provide better access and comfort for long flights.",
			}
		},
	},
	{
		name:    "night-flight",
		applies: func(a Analysis) bool { return !a.Departure.IsDaytime && !a.Arrival.IsDaytime },
		build: func(Analysis) Recommendation {
			return Recommendation{
				SeatSide:       "Night Flight",
				Recommendation: "Window seat preferred",
				Reason:         "Night flight - window seats allow you to see city lights and stars, and provide a surface to lean against for sleep.",
			}
		},
	},
	{
		name:    "mixed-day-night",
		applies: func(a Analysis) bool { return a.Departure.IsDaytime != a.Arrival.IsDaytime },
		build: func(Analysis) Recommendation {
			return Recommendation{
				SeatSide:       "Mixed Day/Night",
				Recommendation: "Window seat on the darker side",
				Reason:         "Flight crosses day/night boundary. Choose the side that will be in shadow for most of the flight.",
			}
		},
	},
	{
		name:    "eastbound",
		applies: func(a Analysis) bool { return strings.Contains(a.Bearing.Compass, "East") },
		build: func(Analysis) Recommendation {
			return Recommendation{
				SeatSide:       "Eastbound",
				Recommendation: "Window seat on the left side",
				Reason:         "Eastbound flights often have better views of sunrise and landscapes. Left side provides better views when flying north-south.",
			}
		},
	},
	{
		name: "westbound",
		applies: func(a Analysis) bool {
			return !strings.Contains(a.Bearing.Compass, "East") && strings.Contains(a.Bearing.Compass, "West")
		},
		build: func(Analysis) Recommendation {
			return Recommendation{
				SeatSide:       "Westbound",
				Recommendation: "Window seat on the right side",
				Reason:         "Westbound flights offer sunset views. Right side provides better views when flying north-south.",
			}
		},
	},
	{
		name:    "long-haul",
		applies: func(a Analysis) bool { return a.DurationHours > LongHaulHours },
		build: func(a Analysis) Recommendation {
			return Recommendation{
				SeatSide:       "Long Haul",
				Recommendation: "Aisle seat for mobility",
				Reason: fmt.Sprintf("Long flight duration (%sh) - aisle seats provide easier access to restrooms and allow stretching without disturbing others.",
					formatHours(a.DurationHours)),
			}
		},
	},
	{
		name:    "high-sun",
		applies: func(a Analysis) bool { return a.MidFlight.ElevationDeg > HighSunElevation },
		build: func(Analysis) Recommendation {
			return Recommendation{
				SeatSide:       "High Sun",
				Recommendation: "Shaded side preferred",
				Reason:         "Mid-flight sun will be high in the sky. Choose the side that will be in shadow based on flight direction.",
			}
		},
	},
}

// RuleNames lists the rule table in evaluation order
func RuleNames() []string {
	names := make([]string, len(defaultRules))
	for i, r := range defaultRules {
		names[i] = r.name
	}
	return names
}
