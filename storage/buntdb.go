// Package storage provides persistence backends for the override journal.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/buntdb"

	"github.com/dresoeta/indoshim/core"
)

const (
	// DefaultIndexName is the default index used for event retrieval
	DefaultIndexName = "recorded_index"
)

// BuntJournal implements the core.Journal interface using BuntDB
type BuntJournal struct {
	db *buntdb.DB
}

// BuntConfig holds configuration options for BuntDB
type BuntConfig struct {
	// Additional indexes to create beyond the default recorded_index
	AdditionalIndexes map[string]string
	// SyncPolicy determines how often data is synchronized to disk
	SyncPolicy buntdb.SyncPolicy
}

// DefaultBuntConfig returns the default configuration for BuntDB
func DefaultBuntConfig() BuntConfig {
	return BuntConfig{
		AdditionalIndexes: make(map[string]string),
		SyncPolicy:        buntdb.Never,
	}
}

// NewBuntFromMemory creates an in-memory journal with default configuration
func NewBuntFromMemory() (core.Journal, error) {
	return NewBuntJournal(":memory:", DefaultBuntConfig())
}

// NewBuntFromFile creates a file-based journal with default configuration
func NewBuntFromFile(file string) (core.Journal, error) {
	return NewBuntJournal(file, DefaultBuntConfig())
}

// NewBuntJournal creates a new BuntDB journal instance with the specified configuration
func NewBuntJournal(sourceFile string, config BuntConfig) (core.Journal, error) {
	db, err := buntdb.Open(sourceFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open buntdb: %w", err)
	}

	if err := db.SetConfig(buntdb.Config{
		SyncPolicy: config.SyncPolicy,
	}); err != nil {
		return nil, fmt.Errorf("failed to configure buntdb: %w", err)
	}

	// Default index orders events by record timestamp
	if err := db.CreateIndex(DefaultIndexName, "*", buntdb.IndexJSON("recorded_at")); err != nil {
		return nil, fmt.Errorf("failed to create default index: %w", err)
	}

	for name, pattern := range config.AdditionalIndexes {
		if err := db.CreateIndex(name, "*", buntdb.IndexJSON(pattern)); err != nil {
			return nil, fmt.Errorf("failed to create index %s: %w", name, err)
		}
	}

	return &BuntJournal{db: db}, nil
}

// Record stores a new override event in the database
func (b *BuntJournal) Record(_ context.Context, event *core.OverrideEvent) error {
	return b.db.Update(func(tx *buntdb.Tx) error {
		if event.ID == "" {
			event.ID = uuid.NewString()
		}
		if event.RecordedAt.IsZero() {
			event.RecordedAt = time.Now().UTC()
		}

		content, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("failed to marshal event: %w", err)
		}

		if _, _, err := tx.Set(event.ID, string(content), nil); err != nil {
			return fmt.Errorf("failed to store event: %w", err)
		}

		return nil
	})
}

// Events retrieves override events from the database based on provided filters
func (b *BuntJournal) Events(_ context.Context, filters ...core.EventFilter) ([]*core.OverrideEvent, error) {
	events := make([]*core.OverrideEvent, 0)

	err := b.db.View(func(tx *buntdb.Tx) error {
		return tx.Ascend(DefaultIndexName, func(_, value string) bool {
			var event core.OverrideEvent
			if err := json.Unmarshal([]byte(value), &event); err != nil {
				return true // Skip malformed entries
			}

			if matchesFilters(event, filters) {
				events = append(events, &event)
			}
			return true
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read events: %w", err)
	}

	return events, nil
}

// matchesFilters checks if an event passes all provided filters
func matchesFilters(event core.OverrideEvent, filters []core.EventFilter) bool {
	for _, filter := range filters {
		if !filter(event) {
			return false
		}
	}
	return true
}
