// Package airports holds the airport reference catalog and free-text lookup over it.
package airports

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yegors/seat-side/internal/physics"
)

var (
	// ErrCatalogNotLoaded is returned by lookups made before a catalog is available
	ErrCatalogNotLoaded = errors.New("airport catalog not loaded")
	// ErrAirportNotFound is returned when the input matches no airport
	ErrAirportNotFound = errors.New("airport not found")
)

// Airport is a single catalog entry
type Airport struct {
	Code      string  `json:"code" yaml:"code"`
	Name      string  `json:"name" yaml:"name"`
	City      string  `json:"city" yaml:"city"`
	Country   string  `json:"country" yaml:"country"`
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

// Position returns the airport coordinates
func (a Airport) Position() physics.Coordinate {
	return physics.Coordinate{Latitude: a.Latitude, Longitude: a.Longitude}
}

// Validate checks that every field is populated and the coordinates are in range
func (a Airport) Validate() error {
	if len(a.Code) != 3 || strings.ToUpper(a.Code) != a.Code {
		return fmt.Errorf("invalid airport code %q: must be 3 uppercase characters", a.Code)
	}
	for _, r := range a.Code {
		if r < 'A' || r > 'Z' {
			return fmt.Errorf("invalid airport code %q: must be letters only", a.Code)
		}
	}
	if a.Name == "" || a.City == "" || a.Country == "" {
		return fmt.Errorf("airport %s: name, city and country are required", a.Code)
	}
	if !a.Position().Valid() {
		return fmt.Errorf("airport %s: coordinates out of range (%f, %f)", a.Code, a.Latitude, a.Longitude)
	}
	return nil
}

// Catalog is an immutable, ordered set of airports. The zero value is an unloaded catalog.
type Catalog struct {
	airports []Airport
	byCode   map[string]int
	loaded   bool
}

// NewCatalog validates the entries and builds a catalog preserving their order.
// Codes are trimmed and upper-cased before validation.
func NewCatalog(entries []Airport) (*Catalog, error) {
	c := &Catalog{
		airports: make([]Airport, 0, len(entries)),
		byCode:   make(map[string]int, len(entries)),
	}

	for i, a := range entries {
		a.Code = strings.ToUpper(strings.TrimSpace(a.Code))
		a.Name = strings.TrimSpace(a.Name)
		a.City = strings.TrimSpace(a.City)
		a.Country = strings.TrimSpace(a.Country)

		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("airport #%d: %w", i+1, err)
		}
		if _, exists := c.byCode[a.Code]; exists {
			return nil, fmt.Errorf("airport #%d: duplicate code: %s", i+1, a.Code)
		}

		c.byCode[a.Code] = len(c.airports)
		c.airports = append(c.airports, a)
	}

	c.loaded = true
	return c, nil
}

// Builtin returns the catalog compiled into the binary
func Builtin() *Catalog {
	c, err := NewCatalog(builtinAirports)
	if err != nil {
		// The built-in dataset is covered by tests
		panic(fmt.Sprintf("invalid built-in airport catalog: %v", err))
	}
	return c
}

// Loaded reports whether the catalog has been initialised
func (c *Catalog) Loaded() bool {
	return c != nil && c.loaded
}

// Len returns the number of airports
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.airports)
}

// All returns a copy of every airport in catalog order
func (c *Catalog) All() []Airport {
	if c == nil {
		return nil
	}
	out := make([]Airport, len(c.airports))
	copy(out, c.airports)
	return out
}
