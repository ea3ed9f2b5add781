package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/yegors/seat-side/internal/seating"
	"github.com/yegors/seat-side/pkg/logger"
	_ "modernc.org/sqlite"
)

// HistoryRecord is one answered recommendation query
type HistoryRecord struct {
	ID              int64                    `json:"id"`
	RequestID       string                   `json:"request_id"`
	CreatedAt       time.Time                `json:"created_at"`
	Source          string                   `json:"source"`
	Destination     string                   `json:"destination"`
	Departure       time.Time                `json:"departure"`
	DurationHours   float64                  `json:"duration_hours"`
	BearingDeg      float64                  `json:"bearing_deg"`
	Compass         string                   `json:"compass"`
	Recommendations []seating.Recommendation `json:"recommendations"`
}

// HistoryStorage is a SQLite-based log of recommendation queries
type HistoryStorage struct {
	db              *sql.DB
	logger          *logger.Logger
	maxHistoryInAPI int
}

// NewHistoryStorage opens (or creates) the history database. Use ":memory:" for a throwaway store.
func NewHistoryStorage(dbPath string, maxHistoryInAPI int, log *logger.Logger) (*HistoryStorage, error) {
	storageLogger := log.Named("sqlite")

	storageLogger.Info("Initializing SQLite storage",
		logger.String("path", dbPath))

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time; a single connection also keeps
	// an in-memory database alive for the lifetime of the pool
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to apply %q: %w", p, err)
		}
	}

	if err := initDatabase(db, storageLogger); err != nil {
		db.Close()
		return nil, err
	}

	if maxHistoryInAPI <= 0 {
		maxHistoryInAPI = 100
	}

	return &HistoryStorage{
		db:              db,
		logger:          storageLogger,
		maxHistoryInAPI: maxHistoryInAPI,
	}, nil
}

// initDatabase initializes the database schema
func initDatabase(db *sql.DB, log *logger.Logger) error {
	log.Info("Initializing database schema")

	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS recommendation_history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			request_id TEXT NOT NULL UNIQUE,
			created_at TEXT NOT NULL,
			source TEXT NOT NULL,
			destination TEXT NOT NULL,
			departure TEXT NOT NULL,
			duration_hours REAL NOT NULL,
			bearing_deg REAL NOT NULL,
			compass TEXT NOT NULL,
			recommendations TEXT NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create recommendation_history table: %w", err)
	}

	_, err = db.Exec(`CREATE INDEX IF NOT EXISTS idx_history_route ON recommendation_history(source, destination)`)
	if err != nil {
		return fmt.Errorf("failed to create route index: %w", err)
	}

	return nil
}

// Close closes the database connection
func (s *HistoryStorage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Record stores a query. RequestID and CreatedAt are filled in when empty.
func (s *HistoryStorage) Record(ctx context.Context, record *HistoryRecord) error {
	if record.RequestID == "" {
		record.RequestID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	recs, err := json.Marshal(record.Recommendations)
	if err != nil {
		return fmt.Errorf("failed to encode recommendations: %w", err)
	}

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO recommendation_history
		(request_id, created_at, source, destination, departure, duration_hours, bearing_deg, compass, recommendations)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.RequestID,
		record.CreatedAt.Format(time.RFC3339Nano),
		record.Source,
		record.Destination,
		record.Departure.Format(time.RFC3339),
		record.DurationHours,
		record.BearingDeg,
		record.Compass,
		string(recs),
	)
	if err != nil {
		return fmt.Errorf("failed to insert history record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert ID: %w", err)
	}
	record.ID = id

	s.logger.Debug("Recorded recommendation query",
		logger.String("request_id", record.RequestID),
		logger.String("source", record.Source),
		logger.String("destination", record.Destination))

	return nil
}

// Recent returns the newest records first. limit is capped at the configured API maximum.
func (s *HistoryStorage) Recent(ctx context.Context, limit int) ([]*HistoryRecord, error) {
	if limit <= 0 || limit > s.maxHistoryInAPI {
		limit = s.maxHistoryInAPI
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, request_id, created_at, source, destination, departure, duration_hours, bearing_deg, compass, recommendations
		FROM recommendation_history
		ORDER BY id DESC
		LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	records := make([]*HistoryRecord, 0)
	for rows.Next() {
		var record HistoryRecord
		var createdAt, departure, recs string

		if err := rows.Scan(
			&record.ID,
			&record.RequestID,
			&createdAt,
			&record.Source,
			&record.Destination,
			&departure,
			&record.DurationHours,
			&record.BearingDeg,
			&record.Compass,
			&recs,
		); err != nil {
			return nil, fmt.Errorf("failed to scan history record: %w", err)
		}

		if record.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		if record.Departure, err = time.Parse(time.RFC3339, departure); err != nil {
			return nil, fmt.Errorf("failed to parse departure: %w", err)
		}
		if err := json.Unmarshal([]byte(recs), &record.Recommendations); err != nil {
			return nil, fmt.Errorf("failed to decode recommendations: %w", err)
		}

		records = append(records, &record)
	}

	return records, rows.Err()
}

// Count returns the number of stored records
func (s *HistoryStorage) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM recommendation_history`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count history: %w", err)
	}
	return count, nil
}
