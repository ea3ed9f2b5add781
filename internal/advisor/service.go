// Package advisor resolves a city pair, runs the recommendation engine and records the query.
// The HTTP API, the websocket hub and the CLI all answer through it.
package advisor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yegors/seat-side/internal/airports"
	"github.com/yegors/seat-side/internal/physics"
	"github.com/yegors/seat-side/internal/seating"
	"github.com/yegors/seat-side/internal/storage/sqlite"
	"github.com/yegors/seat-side/internal/websocket"
	"github.com/yegors/seat-side/pkg/logger"
)

// DefaultPathPoints is the route polyline size used when none is configured
const DefaultPathPoints = 51

// Request is a recommendation query as the outer surfaces receive it
type Request struct {
	Source        string  `json:"source"`
	Destination   string  `json:"destination"`
	Departure     string  `json:"departure"`
	DurationHours float64 `json:"duration_hours"`
}

// Result is the answer to a Request
type Result struct {
	RequestID       string                   `json:"request_id,omitempty"`
	Source          airports.Airport         `json:"source"`
	Destination     airports.Airport         `json:"destination"`
	Analysis        seating.Analysis         `json:"analysis"`
	Recommendations []seating.Recommendation `json:"recommendations"`
	Path            []physics.Coordinate     `json:"path"`
}

// HistoryRecorder persists answered queries
type HistoryRecorder interface {
	Record(ctx context.Context, record *sqlite.HistoryRecord) error
}

// Broadcaster fans a message out to every connected client
type Broadcaster interface {
	Broadcast(message *websocket.Message)
}

// Service answers recommendation queries
type Service struct {
	lookup      *airports.Lookup
	engine      *seating.Engine
	history     HistoryRecorder
	broadcaster Broadcaster
	pathPoints  int
	logger      *logger.Logger
}

// NewService creates a service. history may be nil to disable recording.
func NewService(lookup *airports.Lookup, engine *seating.Engine, history HistoryRecorder, pathPoints int, log *logger.Logger) *Service {
	if pathPoints < 2 {
		pathPoints = DefaultPathPoints
	}
	return &Service{
		lookup:     lookup,
		engine:     engine,
		history:    history,
		pathPoints: pathPoints,
		logger:     log.Named("advisor"),
	}
}

// SetBroadcaster announces every recorded query through b. Without history nothing is sent.
func (s *Service) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Lookup returns the airport lookup the service resolves against
func (s *Service) Lookup() *airports.Lookup {
	return s.lookup
}

// PathPoints returns the configured route polyline size
func (s *Service) PathPoints() int {
	return s.pathPoints
}

// Resolve maps free text (a city name or an IATA code) to an airport
func (s *Service) Resolve(text string) (airports.Airport, error) {
	if strings.TrimSpace(text) == "" {
		return airports.Airport{}, fmt.Errorf("%w: airport is required", seating.ErrInvalidInput)
	}
	a, err := s.lookup.FindByCity(text)
	if err != nil {
		return airports.Airport{}, fmt.Errorf("%q: %w", text, err)
	}
	return a, nil
}

// Path returns the route polyline between two resolved airports
func (s *Service) Path(src, dst airports.Airport, points int) []physics.Coordinate {
	if points < 2 {
		points = s.pathPoints
	}
	return physics.Interpolate(src.Position(), dst.Position(), points)
}

// Advise validates the request, resolves both airports and returns recommendations.
// A failed history write is logged and does not fail the query.
func (s *Service) Advise(ctx context.Context, req Request) (*Result, error) {
	if err := seating.ValidateDurationHours(req.DurationHours); err != nil {
		return nil, err
	}
	departure, err := seating.ParseDeparture(req.Departure, nil)
	if err != nil {
		return nil, err
	}

	src, err := s.Resolve(req.Source)
	if err != nil {
		return nil, err
	}
	dst, err := s.Resolve(req.Destination)
	if err != nil {
		return nil, err
	}

	flight := seating.Flight{
		Source:        src,
		Destination:   dst,
		Departure:     departure,
		DurationHours: req.DurationHours,
	}
	analysis := s.engine.Analyze(flight)

	result := &Result{
		Source:          src,
		Destination:     dst,
		Analysis:        analysis,
		Recommendations: s.engine.Evaluate(analysis),
		Path:            s.Path(src, dst, s.pathPoints),
	}

	s.logger.Info("Answered recommendation query",
		logger.String("source", src.Code),
		logger.String("destination", dst.Code),
		logger.Float64("bearing", analysis.Bearing.Degrees),
		logger.Int("recommendations", len(result.Recommendations)))

	if s.history != nil {
		record := &sqlite.HistoryRecord{
			Source:          src.Code,
			Destination:     dst.Code,
			Departure:       departure,
			DurationHours:   req.DurationHours,
			BearingDeg:      analysis.Bearing.Degrees,
			Compass:         analysis.Bearing.Compass,
			Recommendations: result.Recommendations,
		}
		if err := s.history.Record(ctx, record); err != nil {
			s.logger.Error("Failed to record query", logger.Error(err))
		} else {
			result.RequestID = record.RequestID
			if s.broadcaster != nil {
				s.broadcaster.Broadcast(&websocket.Message{
					Type: websocket.MessageTypeHistoryRecorded,
					Data: map[string]any{"record": record},
				})
			}
		}
	}

	return result, nil
}

// IsClientError reports whether err was caused by the caller's input
func IsClientError(err error) bool {
	return errors.Is(err, seating.ErrInvalidInput) || errors.Is(err, airports.ErrAirportNotFound)
}
