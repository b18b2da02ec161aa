// file: radixmap/store/store.go
package store

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/maatini/radixmap/radix"
)

// Record is one persisted (key, value) pair of the source dataset a
// radix.Map is built from. The dispatch buffer itself is never
// persisted — it is always rebuilt in memory from the dataset.
type Record struct {
	ID    uint   `gorm:"primaryKey"`
	Key   []byte `gorm:"uniqueIndex;not null"`
	Value []byte `gorm:"not null"`
}

// TableName names the persisted dataset table after the routing entries
// it holds, rather than gorm's default pluralization of the struct name.
func (Record) TableName() string { return "routing_entries" }

// AuditRecord is a build-time snapshot of a Map's shape, written once per
// successful build so operators can see how the dispatch tree's size and
// depth evolve as the dataset grows.
type AuditRecord struct {
	ID            uint `gorm:"primaryKey"`
	CreatedAt     time.Time
	KeyCount      int
	BufferBytes   int
	Depth         int
	BuildDuration time.Duration
}

// TableName names the audit table after the routing entries it tracks.
func (AuditRecord) TableName() string { return "routing_entries_audit" }

// Store is a dataset-backed persistence layer for rebuildable maps.
type Store struct {
	db *gorm.DB
}

// Open connects to the given driver ("sqlite" or "postgres") and dsn and
// migrates the Record and AuditRecord tables.
func Open(driver, dsn string) (*Store, error) {
	var dialector gorm.Dialector
	switch driver {
	case "sqlite":
		dialector = sqlite.Open(dsn)
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("store: unsupported driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", driver, err)
	}
	if err := db.AutoMigrate(&Record{}, &AuditRecord{}); err != nil {
		return nil, fmt.Errorf("store: migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Replace atomically swaps the whole dataset for records.
func (s *Store) Replace(records []Record) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&Record{}).Error; err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}
		return tx.Create(&records).Error
	})
}

// Load returns every persisted record in insertion order.
func (s *Store) Load() ([]Record, error) {
	var records []Record
	if err := s.db.Order("id asc").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("store: load: %w", err)
	}
	return records, nil
}

// RecordStats appends an audit row capturing a freshly built map's shape.
func (s *Store) RecordStats(stats radix.Stats) error {
	row := AuditRecord{
		KeyCount:      stats.Entries,
		BufferBytes:   stats.BufferBytes,
		Depth:         stats.Depth,
		BuildDuration: stats.BuildDuration,
	}
	return s.db.Create(&row).Error
}

// AuditHistory returns every recorded build audit row, oldest first.
func (s *Store) AuditHistory() ([]AuditRecord, error) {
	var rows []AuditRecord
	if err := s.db.Order("id asc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("store: audit history: %w", err)
	}
	return rows, nil
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
