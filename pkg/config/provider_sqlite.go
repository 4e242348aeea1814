package config

import (
	"database/sql"
	"fmt"
	"strconv"

	_ "modernc.org/sqlite"
)

// SQLiteProvider implements ConfigProvider for SQLite database configuration
type SQLiteProvider struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteProvider creates a new SQLite configuration provider
func NewSQLiteProvider(dbPath string) (*SQLiteProvider, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}

	return &SQLiteProvider{
		db:     db,
		dbPath: dbPath,
	}, nil
}

// LoadConfig loads the complete configuration from SQLite database
func (s *SQLiteProvider) LoadConfig() (*ConfigData, error) {
	settings, err := s.loadSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	config := &ConfigData{
		Inputs: InputsData{
			RideLog:  settings["ride_log"],
			Segments: settings["segments"],
			Places:   settings["places"],
		},
		Places: PlacesData{
			StartYear:  atoiDefault(settings["places_start_year"], 0),
			StartMonth: atoiDefault(settings["places_start_month"], 1),
		},
		Eddington: EddingtonData{
			YearCutoff: atoiDefault(settings["eddington_year_cutoff"], 0),
		},
		Estimator: EstimatorData{
			Degree: atoiDefault(settings["estimator_degree"], 0),
		},
	}

	config.Places.BonusThresholds, err = s.loadFloats("SELECT threshold FROM bonus_thresholds ORDER BY threshold")
	if err != nil {
		return nil, fmt.Errorf("failed to load bonus thresholds: %w", err)
	}

	targets, err := s.loadInts("SELECT target FROM eddington_targets ORDER BY target")
	if err != nil {
		return nil, fmt.Errorf("failed to load eddington targets: %w", err)
	}
	config.Eddington.Targets = targets

	if addr, ok := settings["rest_listen_addr"]; ok {
		config.REST = &RESTServerData{
			ListenAddr: addr,
			Port:       atoiDefault(settings["rest_port"], 0),
		}
	}

	return config, nil
}

func (s *SQLiteProvider) loadSettings() (map[string]string, error) {
	rows, err := s.db.Query("SELECT name, value FROM settings")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	settings := make(map[string]string)
	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return nil, err
		}
		settings[name] = value
	}
	return settings, rows.Err()
}

func (s *SQLiteProvider) loadFloats(query string) ([]float64, error) {
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []float64
	for rows.Next() {
		var v float64
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (s *SQLiteProvider) loadInts(query string) ([]int, error) {
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []int
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// IsReadOnly returns false; the SQLite backend can be updated in place
func (s *SQLiteProvider) IsReadOnly() bool {
	return false
}

// Close closes the database connection
func (s *SQLiteProvider) Close() error {
	return s.db.Close()
}
