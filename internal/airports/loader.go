package airports

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/yegors/seat-side/pkg/logger"
	"gopkg.in/yaml.v3"
)

// Column aliases accepted in CSV headers. The second set matches OurAirports exports.
var csvColumns = map[string][]string{
	"code":      {"code", "iata_code"},
	"name":      {"name"},
	"city":      {"city", "municipality"},
	"country":   {"country", "iso_country"},
	"latitude":  {"latitude", "latitude_deg"},
	"longitude": {"longitude", "longitude_deg"},
}

// yamlCatalog is the on-disk YAML layout
type yamlCatalog struct {
	Airports []Airport `yaml:"airports"`
}

// Load returns the built-in catalog when path is empty, otherwise the catalog read from path
func Load(path string, log *logger.Logger) (*Catalog, error) {
	log = log.Named("airports")

	if path == "" {
		c := Builtin()
		log.Info("Loaded built-in airport catalog", logger.Int("airports", c.Len()))
		return c, nil
	}

	c, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	log.Info("Loaded airport catalog",
		logger.String("path", path),
		logger.Int("airports", c.Len()))
	return c, nil
}

// LoadFile reads a catalog from a .csv, .yaml or .yml file
func LoadFile(path string) (*Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open airport catalog: %w", err)
	}
	defer file.Close()

	var entries []Airport
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		entries, err = ReadCSV(file)
	case ".yaml", ".yml":
		entries, err = ReadYAML(file)
	default:
		return nil, fmt.Errorf("unsupported airport catalog format: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read airport catalog %s: %w", path, err)
	}

	return NewCatalog(entries)
}

// ReadYAML decodes a list of airports under the top-level "airports" key
func ReadYAML(r io.Reader) ([]Airport, error) {
	var doc yamlCatalog
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	return doc.Airports, nil
}

// ReadCSV decodes airports from a CSV file with a header row. Rows without a code are
// skipped so OurAirports exports (many airports have no IATA code) load directly.
func ReadCSV(r io.Reader) ([]Airport, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	colIndices := make(map[string]int)
	for i, col := range header {
		colIndices[strings.ToLower(strings.TrimSpace(col))] = i
	}

	idx := make(map[string]int, len(csvColumns))
	for field, aliases := range csvColumns {
		found := false
		for _, alias := range aliases {
			if i, ok := colIndices[alias]; ok {
				idx[field] = i
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("missing required column: %s", field)
		}
	}

	var airports []Airport
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		get := func(field string) string {
			i := idx[field]
			if i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		if get("code") == "" {
			continue
		}

		lat, err := strconv.ParseFloat(get("latitude"), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid latitude: %w", line, err)
		}
		lon, err := strconv.ParseFloat(get("longitude"), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid longitude: %w", line, err)
		}

		airports = append(airports, Airport{
			Code:      get("code"),
			Name:      get("name"),
			City:      get("city"),
			Country:   get("country"),
			Latitude:  lat,
			Longitude: lon,
		})
	}

	return airports, nil
}
