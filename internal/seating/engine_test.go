package seating

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yegors/seat-side/internal/airports"
	"github.com/yegors/seat-side/pkg/logger"
)

// ---------------------------------------------------------------------------
// Test Helpers
// ---------------------------------------------------------------------------

var (
	jfk = airports.Airport{Code: "JFK", Name: "John F. Kennedy International Airport", City: "New York", Country: "USA", Latitude: 40.6413, Longitude: -73.7781}
	lhr = airports.Airport{Code: "LHR", Name: "Heathrow Airport", City: "London", Country: "UK", Latitude: 51.4700, Longitude: -0.4543}
)

func newTestEngine() *Engine {
	return NewEngine(Options{}, logger.NewNop())
}

func at(hour, minute int) time.Time {
	return time.Date(2024, 6, 29, hour, minute, 0, 0, time.UTC)
}

func sides(recs []Recommendation) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.SeatSide
	}
	return out
}

// ---------------------------------------------------------------------------
// Exposure
// ---------------------------------------------------------------------------

func TestClassifyExposureTable(t *testing.T) {
	cases := []struct {
		bearing, azimuth float64
		left, right      float64
	}{
		{45, 200, 0.7, 0.3},
		{45, 100, 0.3, 0.7},
		{45, 180, 0.3, 0.7},
		{135, 100, 0.7, 0.3},
		{135, 270, 0.3, 0.7},
		{135, 0, 0.3, 0.7},
		{225, 100, 0.3, 0.7},
		{225, 270, 0.7, 0.3},
		{315, 200, 0.3, 0.7},
		{315, 90, 0.7, 0.3},
		{0, 359, 0.7, 0.3},
		{90, 179, 0.7, 0.3},
		{180, 180, 0.7, 0.3},
		{270, 180, 0.7, 0.3},
	}

	for _, tc := range cases {
		e := ClassifyExposure(tc.bearing, tc.azimuth)
		assert.Equal(t, tc.left, e.LeftFraction, "bearing %v azimuth %v", tc.bearing, tc.azimuth)
		assert.Equal(t, tc.right, e.RightFraction, "bearing %v azimuth %v", tc.bearing, tc.azimuth)
	}
}

func TestClassifyExposureFractions(t *testing.T) {
	for bearing := 0.0; bearing < 360; bearing += 7.5 {
		for az := 0.0; az < 360; az += 7.5 {
			e := ClassifyExposure(bearing, az)
			assert.Contains(t, []float64{0.3, 0.7}, e.LeftFraction)
			assert.Contains(t, []float64{0.3, 0.7}, e.RightFraction)
			assert.InDelta(t, 1.0, e.LeftFraction+e.RightFraction, 1e-12)
		}
	}
}

// ---------------------------------------------------------------------------
// Engine
// ---------------------------------------------------------------------------

func TestRecommendMorningTransatlantic(t *testing.T) {
	e := newTestEngine()

	recs := e.Recommend(Flight{Source: jfk, Destination: lhr, Departure: at(8, 0), DurationHours: 7})

	// Northeast is not "East": the directional rules only match the due cardinal names
	require.Equal(t,
		[]string{"Left", "Right", "Day Flight", "Long Haul", "High Sun"},
		sides(recs))

	assert.Equal(t, "Window seat on the right side", recs[0].Recommendation)
	assert.Contains(t, recs[0].Reason, "30%")
	assert.Equal(t, "Window seat on the left side", recs[1].Recommendation)
	assert.Contains(t, recs[1].Reason, "70%")
	assert.Equal(t, "Aisle seat preferred", recs[2].Recommendation)
	assert.Equal(t, "Aisle seat for mobility", recs[3].Recommendation)
	assert.Contains(t, recs[3].Reason, "(7h)")
	assert.Equal(t, "Shaded side preferred", recs[4].Recommendation)
}

func TestRecommendAfternoonTransatlantic(t *testing.T) {
	e := newTestEngine()
	f := Flight{Source: jfk, Destination: lhr, Departure: at(14, 0), DurationHours: 7}

	a := e.Analyze(f)
	assert.InDelta(t, 51.0, a.Bearing.Degrees, 1.0)
	assert.Equal(t, "Northeast", a.Bearing.Compass)
	assert.True(t, a.Departure.IsDaytime)
	// 21:00 arrival is night under the model
	assert.False(t, a.Arrival.IsDaytime)
	assert.InDelta(t, 17.5, a.MidFlight.TimeOfDayHours, 1e-9)
	assert.Equal(t, 0.7, a.Exposure.LeftFraction)

	recs := e.Evaluate(a)
	assert.Equal(t,
		[]string{"Left", "Right", "Mixed Day/Night", "Long Haul"},
		sides(recs))
	assert.Contains(t, recs[0].Reason, "70%")
	assert.Equal(t, "Window seat on the darker side", recs[2].Recommendation)
}

func TestRecommendNightWestbound(t *testing.T) {
	e := newTestEngine()

	recs := e.Recommend(Flight{Source: lhr, Destination: jfk, Departure: at(22, 0), DurationHours: 3})

	assert.Equal(t, []string{"Left", "Right", "Night Flight", "Westbound"}, sides(recs))
	assert.Equal(t, "Window seat preferred", recs[2].Recommendation)
	assert.Equal(t, "Window seat on the right side", recs[3].Recommendation)
}

func TestRecommendDueNorthHasNoDirectionalAdvice(t *testing.T) {
	e := newTestEngine()
	south := airports.Airport{Code: "AAA", Name: "A", City: "A", Country: "X", Latitude: 10, Longitude: 20}
	north := airports.Airport{Code: "BBB", Name: "B", City: "B", Country: "X", Latitude: 40, Longitude: 20}

	recs := e.Recommend(Flight{Source: south, Destination: north, Departure: at(6, 0), DurationHours: 2})

	assert.Equal(t, []string{"Left", "Right", "Day Flight"}, sides(recs))
}

func TestDirectionalRules(t *testing.T) {
	e := newTestEngine()
	origin := airports.Airport{Code: "ORG", Name: "Origin", City: "Origin", Country: "X", Latitude: 0, Longitude: 0}

	tests := []struct {
		name     string
		lat, lon float64
		compass  string
		want     string
	}{
		{"due east", 0, 10, "East", "Eastbound"},
		{"due west", 0, -10, "West", "Westbound"},
		{"northeast", 10, 10, "Northeast", ""},
		{"southeast", -10, 10, "Southeast", ""},
		{"southwest", -10, -10, "Southwest", ""},
		{"northwest", 10, -10, "Northwest", ""},
		{"due north", 10, 0, "North", ""},
		{"due south", -10, 0, "South", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := airports.Airport{Code: "DST", Name: "Dest", City: "Dest", Country: "X", Latitude: tt.lat, Longitude: tt.lon}
			f := Flight{Source: origin, Destination: dst, Departure: at(6, 0), DurationHours: 2}

			require.Equal(t, tt.compass, e.Analyze(f).Bearing.Compass)

			got := sides(e.Recommend(f))
			for _, side := range []string{"Eastbound", "Westbound"} {
				if side == tt.want {
					assert.Contains(t, got, side)
				} else {
					assert.NotContains(t, got, side)
				}
			}
		})
	}
}

func TestLongHaulReasonFormatsDuration(t *testing.T) {
	e := newTestEngine()

	recs := e.Recommend(Flight{Source: jfk, Destination: lhr, Departure: at(1, 0), DurationHours: 7.5})
	var found bool
	for _, r := range recs {
		if r.SeatSide == "Long Haul" {
			found = true
			assert.Contains(t, r.Reason, "(7.5h)")
		}
	}
	assert.True(t, found)

	recs = e.Recommend(Flight{Source: jfk, Destination: lhr, Departure: at(1, 0), DurationHours: 6})
	assert.NotContains(t, sides(recs), "Long Haul")
}

func TestRecommendIsDeterministic(t *testing.T) {
	e := newTestEngine()
	f := Flight{Source: jfk, Destination: lhr, Departure: at(9, 45), DurationHours: 6.5}

	first := e.Recommend(f)
	second := e.Recommend(f)
	assert.Equal(t, first, second)

	// Results do not share backing storage
	first[0].SeatSide = "mutated"
	assert.Equal(t, "Left", e.Recommend(f)[0].SeatSide)
}

func TestRecommendConcurrent(t *testing.T) {
	e := newTestEngine()
	want := e.Recommend(Flight{Source: jfk, Destination: lhr, Departure: at(8, 0), DurationHours: 7})

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := e.Recommend(Flight{Source: jfk, Destination: lhr, Departure: at(8, 0), DurationHours: 7})
			assert.Equal(t, want, got)
		}()
	}
	wg.Wait()
}

func TestMagneticVariationOption(t *testing.T) {
	f := Flight{Source: jfk, Destination: lhr, Departure: at(8, 0), DurationHours: 7}

	plain := newTestEngine().Analyze(f)
	assert.Nil(t, plain.Bearing.MagneticDegrees)

	magnetic := NewEngine(Options{MagneticVariation: true}, logger.NewNop()).Analyze(f)
	assert.Equal(t, plain.Bearing.Degrees, magnetic.Bearing.Degrees)
	require.NotNil(t, magnetic.Bearing.MagneticDegrees)
	// JFK declination is roughly 13 degrees west, so the magnetic course reads higher
	assert.InDelta(t, plain.Bearing.Degrees+13, *magnetic.Bearing.MagneticDegrees, 1.5)
}

func TestRuleNames(t *testing.T) {
	assert.Equal(t, []string{
		"left-exposed", "right-exposed",
		"day-flight", "night-flight", "mixed-day-night",
		"eastbound", "westbound",
		"long-haul", "high-sun",
	}, RuleNames())
}

func TestFlightTimes(t *testing.T) {
	f := Flight{Departure: at(22, 0), DurationHours: 3.5}
	assert.Equal(t, time.Date(2024, 6, 30, 1, 30, 0, 0, time.UTC), f.Arrival())
	assert.Equal(t, time.Date(2024, 6, 29, 23, 45, 0, 0, time.UTC), f.MidFlight())
}
