package physics

import (
	"math"
	"sync"
	"time"

	"github.com/westphae/geomag/pkg/egm96"
	"github.com/westphae/geomag/pkg/wmm"
)

// Coordinate is a geographic position in decimal degrees
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether the coordinate is inside latitude/longitude bounds
func (c Coordinate) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180 &&
		!math.IsNaN(c.Latitude) && !math.IsNaN(c.Longitude)
}

// Compass points, indexed by round(bearing/45) mod 8
var compassPoints = [8]string{
	"North", "Northeast", "East", "Southeast",
	"South", "Southwest", "West", "Northwest",
}

// FlightBearing is the initial great-circle course from one point to another
type FlightBearing struct {
	Degrees float64 `json:"degrees"`
	Compass string  `json:"compass"`

	// MagneticDegrees is the same course referenced to magnetic north at the origin.
	// Only set when magnetic variation is requested.
	MagneticDegrees *float64 `json:"magnetic_degrees,omitempty"`
}

// ------------------------------------------------------------------------------------------------
// NAVIGATION
// ------------------------------------------------------------------------------------------------

func toRadians(deg float64) float64 { return deg * math.Pi / 180 }
func toDegrees(rad float64) float64 { return rad * 180 / math.Pi }

// NormalizeHeading wraps any angle in degrees into [0, 360)
func NormalizeHeading(deg float64) float64 {
	h := math.Mod(deg, 360)
	if h < 0 {
		h += 360
	}
	// math.Mod of a tiny negative number plus 360 can round to exactly 360
	if h >= 360 {
		h -= 360
	}
	return h
}

// InitialBearing returns the forward azimuth from a to b in degrees [0, 360).
// Identical points yield 0 (North) since atan2(0, 0) is 0.
func InitialBearing(a, b Coordinate) float64 {
	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)
	deltaLon := toRadians(b.Longitude - a.Longitude)

	y := math.Sin(deltaLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(deltaLon)

	return NormalizeHeading(toDegrees(math.Atan2(y, x)))
}

// CompassName maps a heading to one of the eight cardinal/intercardinal names
func CompassName(bearing float64) string {
	index := int(math.Round(NormalizeHeading(bearing)/45)) % 8
	return compassPoints[index]
}

// Bearing computes the flight bearing from source to destination
func Bearing(source, destination Coordinate) FlightBearing {
	deg := InitialBearing(source, destination)
	return FlightBearing{
		Degrees: deg,
		Compass: CompassName(deg),
	}
}

// Midpoint returns the arithmetic mean of the two positions. This is not the geodesic
// midpoint and is wrong across the antimeridian.
func Midpoint(a, b Coordinate) Coordinate {
	return Coordinate{
		Latitude:  (a.Latitude + b.Latitude) / 2,
		Longitude: (a.Longitude + b.Longitude) / 2,
	}
}

// Interpolate returns n points on the straight lat/lon line from a to b, both endpoints included.
// n < 2 is treated as 2.
func Interpolate(a, b Coordinate, n int) []Coordinate {
	if n < 2 {
		n = 2
	}
	segments := float64(n - 1)

	points := make([]Coordinate, n)
	for i := 0; i < n; i++ {
		t := float64(i) / segments
		points[i] = Coordinate{
			Latitude:  a.Latitude + (b.Latitude-a.Latitude)*t,
			Longitude: a.Longitude + (b.Longitude-a.Longitude)*t,
		}
	}
	// Avoid accumulated floating error on the last point
	points[n-1] = b
	return points
}

// ------------------------------------------------------------------------------------------------
// MAGNETICS
// ------------------------------------------------------------------------------------------------

// wmm caches the last location's field in package globals
var magneticMu sync.Mutex

// MagneticVariation calculates the magnetic declination for a given position and time.
// Returns declination in degrees (+East, -West).
func MagneticVariation(pos Coordinate, altFt float64, date time.Time) (float64, error) {
	altM := altFt * 0.3048

	loc := egm96.NewLocationGeodetic(pos.Latitude, pos.Longitude, altM)

	magneticMu.Lock()
	mag, err := wmm.CalculateWMMMagneticField(loc, date)
	magneticMu.Unlock()
	if err != nil {
		return 0, err
	}

	return mag.D(), nil
}

// MagneticCourse converts a true course to a magnetic one given the declination (+East)
func MagneticCourse(trueCourse, declination float64) float64 {
	return NormalizeHeading(trueCourse - declination)
}
