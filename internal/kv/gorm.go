package kv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/festy23/goalboard/internal/database/database"
)

// Entry is a single key-value row.
// Matches the kv_entries table schema.
type Entry struct {
	Key       string    `gorm:"primaryKey;column:entry_key;type:varchar(255)"`
	Value     string    `gorm:"column:payload;type:text;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName specifies the table name for GORM.
func (Entry) TableName() string {
	return "kv_entries"
}

// GormStore persists entries in the kv_entries table of a SQL database.
type GormStore struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// NewGormStore creates a store backed by db. The kv_entries table must exist
// (see EnsureSchema for SQLite and the migrations directory for PostgreSQL).
func NewGormStore(db *gorm.DB, logger *zap.SugaredLogger) *GormStore {
	return &GormStore{db: db, logger: logger}
}

// EnsureSchema creates the kv_entries table through AutoMigrate.
// Used for SQLite, where golang-migrate's postgres driver does not apply.
func EnsureSchema(db *gorm.DB) error {
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return fmt.Errorf("failed to migrate kv_entries: %w", err)
	}
	return nil
}

// Get returns the value stored under key.
func (s *GormStore) Get(ctx context.Context, key string) ([]byte, error) {
	var entry Entry
	err := s.db.WithContext(ctx).
		Where("entry_key = ?", key).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		s.logger.Errorw("kv get failed", "key", key, "error", err)
		return nil, err
	}

	return []byte(entry.Value), nil
}

// Put upserts value under key.
func (s *GormStore) Put(ctx context.Context, key string, value []byte) error {
	entry := Entry{
		Key:       key,
		Value:     string(value),
		UpdatedAt: time.Now().UTC(),
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "entry_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&entry).Error
	if err != nil {
		s.logger.Errorw("kv put failed", "key", key, "error", err)
		return err
	}

	s.logger.Debugw("kv put", "key", key, "bytes", len(value))
	return nil
}

// Ping verifies the database connection.
func (s *GormStore) Ping(ctx context.Context) error {
	return database.HealthCheck(ctx, s.db)
}

// Close closes the underlying database connection.
func (s *GormStore) Close() error {
	return database.Close(s.db)
}
