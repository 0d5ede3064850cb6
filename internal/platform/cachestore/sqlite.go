package cachestore

import (
	"context"
	"errors"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"powerwidget/internal/feature/prices/usecase"
)

// CacheEntryModel is the persisted form of one cache slot.
type CacheEntryModel struct {
	Key       string    `gorm:"primaryKey;size:64"`
	Payload   []byte    `gorm:"not null"`
	WrittenAt time.Time `gorm:"not null"`
}

// TableName returns the table name for cache entries.
func (CacheEntryModel) TableName() string {
	return "cache_entries"
}

// SQLiteStore implements the CacheStore port on a local SQLite file, so the
// cache slot survives the short-lived widget process between scheduled runs.
type SQLiteStore struct {
	db *gorm.DB
}

var _ usecase.CacheStore = (*SQLiteStore)(nil)

// NewSQLiteStore opens (or creates) the SQLite database at path and migrates
// the cache table.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&CacheEntryModel{}); err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) entry(ctx context.Context, key string) (CacheEntryModel, error) {
	var m CacheEntryModel
	err := s.db.WithContext(ctx).First(&m, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return m, ErrNotFound
	}
	return m, err
}

// Exists reports whether an entry is stored under key.
func (s *SQLiteStore) Exists(ctx context.Context, key string) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&CacheEntryModel{}).Where("key = ?", key).Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// AgeOf returns how long ago the entry under key was written.
func (s *SQLiteStore) AgeOf(ctx context.Context, key string, now time.Time) (time.Duration, error) {
	m, err := s.entry(ctx, key)
	if err != nil {
		return 0, err
	}
	return now.Sub(m.WrittenAt), nil
}

// Read returns the blob stored under key.
func (s *SQLiteStore) Read(ctx context.Context, key string) ([]byte, error) {
	m, err := s.entry(ctx, key)
	if err != nil {
		return nil, err
	}
	return m.Payload, nil
}

// Write upserts the entry under key, replacing payload and write time wholesale.
func (s *SQLiteStore) Write(ctx context.Context, key string, payload []byte, now time.Time) error {
	m := CacheEntryModel{Key: key, Payload: payload, WrittenAt: now}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "written_at"}),
		}).
		Create(&m).Error
}
