package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dresoeta/indoshim/core"
)

// SQLJournal implements the core.Journal interface using a SQL database via GORM
type SQLJournal struct {
	db *gorm.DB
}

// SQLConfig holds the configuration for SQL database connections
type SQLConfig struct {
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

// DefaultSQLConfig returns a default configuration for SQL connections
func DefaultSQLConfig() SQLConfig {
	return SQLConfig{
		MaxIdleConns:    5,
		MaxOpenConns:    10,
		ConnMaxLifetime: time.Hour,
	}
}

// NewSQLFromSQLite creates a new SQLite journal instance
func NewSQLFromSQLite(dbPath string, config SQLConfig, opts ...gorm.Option) (core.Journal, error) {
	dialect := sqlite.Open(dbPath)
	return newFromSQL(dialect, config, opts...)
}

// newFromSQL creates a new SQL journal instance with the specified configuration
func newFromSQL(dialect gorm.Dialector, config SQLConfig, opts ...gorm.Option) (core.Journal, error) {
	db, err := gorm.Open(dialect, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(config.MaxIdleConns)
	sqlDB.SetMaxOpenConns(config.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(config.ConnMaxLifetime)

	// Auto migrate the event model
	if err = db.AutoMigrate(&core.OverrideEvent{}); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLJournal{db: db}, nil
}

// Record stores a new override event in the SQL database
func (s *SQLJournal) Record(ctx context.Context, event *core.OverrideEvent) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.RecordedAt.IsZero() {
		event.RecordedAt = time.Now().UTC()
	}

	tx := s.db.WithContext(ctx)
	if result := tx.Create(event); result.Error != nil {
		return fmt.Errorf("failed to record event: %w", result.Error)
	}
	return nil
}

// Events retrieves override events from the SQL database based on provided filters
func (s *SQLJournal) Events(ctx context.Context, filters ...core.EventFilter) ([]*core.OverrideEvent, error) {
	var events []*core.OverrideEvent

	tx := s.db.WithContext(ctx).Order("recorded_at asc")
	if result := tx.Find(&events); result.Error != nil {
		return nil, fmt.Errorf("failed to read events: %w", result.Error)
	}

	return lo.Filter(events, func(event *core.OverrideEvent, _ int) bool {
		return matchesFilters(*event, filters)
	}), nil
}
