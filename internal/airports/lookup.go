package airports

import (
	"strings"
)

// Lookup resolves free-text input against a catalog. It is safe for concurrent use.
type Lookup struct {
	catalog *Catalog
}

// NewLookup creates a lookup over the given catalog. A nil or unloaded catalog is allowed;
// every operation then returns ErrCatalogNotLoaded.
func NewLookup(catalog *Catalog) *Lookup {
	return &Lookup{catalog: catalog}
}

// Catalog returns the underlying catalog
func (l *Lookup) Catalog() *Catalog {
	return l.catalog
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (l *Lookup) ready() error {
	if !l.catalog.Loaded() {
		return ErrCatalogNotLoaded
	}
	return nil
}

// FindByCity resolves a city name or airport code. Passes, in order: exact city match,
// substring match in either direction, exact code match. First hit in catalog order wins.
// Blank input returns ErrAirportNotFound; it would otherwise substring-match the first airport.
func (l *Lookup) FindByCity(text string) (Airport, error) {
	if err := l.ready(); err != nil {
		return Airport{}, err
	}

	query := normalize(text)
	if query == "" {
		return Airport{}, ErrAirportNotFound
	}

	for _, a := range l.catalog.airports {
		if normalize(a.City) == query {
			return a, nil
		}
	}

	for _, a := range l.catalog.airports {
		city := normalize(a.City)
		if strings.Contains(city, query) || strings.Contains(query, city) {
			return a, nil
		}
	}

	for _, a := range l.catalog.airports {
		if normalize(a.Code) == query {
			return a, nil
		}
	}

	return Airport{}, ErrAirportNotFound
}

// FindByCode returns the airport with exactly this code
func (l *Lookup) FindByCode(code string) (Airport, error) {
	if err := l.ready(); err != nil {
		return Airport{}, err
	}

	idx, ok := l.catalog.byCode[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return Airport{}, ErrAirportNotFound
	}
	return l.catalog.airports[idx], nil
}

// Search returns every airport whose city, name, code or country contains the query,
// in catalog order. An empty query matches everything.
func (l *Lookup) Search(query string) ([]Airport, error) {
	if err := l.ready(); err != nil {
		return nil, err
	}

	q := normalize(query)
	return l.filter(func(a Airport) bool {
		return strings.Contains(normalize(a.City), q) ||
			strings.Contains(normalize(a.Name), q) ||
			strings.Contains(normalize(a.Code), q) ||
			strings.Contains(normalize(a.Country), q)
	}), nil
}

// ByCountry returns the airports whose country equals the input, ignoring case
func (l *Lookup) ByCountry(country string) ([]Airport, error) {
	if err := l.ready(); err != nil {
		return nil, err
	}

	c := normalize(country)
	return l.filter(func(a Airport) bool {
		return normalize(a.Country) == c
	}), nil
}

// Major returns the airports serving the major-city list, in catalog order
func (l *Lookup) Major() ([]Airport, error) {
	if err := l.ready(); err != nil {
		return nil, err
	}

	cities := make(map[string]bool, len(majorCities))
	for _, c := range majorCities {
		cities[c] = true
	}
	return l.filter(func(a Airport) bool {
		return cities[a.City]
	}), nil
}

func (l *Lookup) filter(match func(Airport) bool) []Airport {
	out := make([]Airport, 0)
	for _, a := range l.catalog.airports {
		if match(a) {
			out = append(out, a)
		}
	}
	return out
}
