package storage

import (
	"context"
	"errors"
	"fmt"

	"fincontrol/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore keeps values in the kv_entries table. It works with both the
// sqlite and postgres gorm drivers.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps an open gorm connection. The kv_entries table must
// already exist (see database.Manager.Migrate).
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Get(ctx context.Context, key string) ([]byte, error) {
	var entry models.KVEntry
	err := s.db.WithContext(ctx).Where("entry_key = ?", key).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("gorm get %s: %w", key, err)
	}
	return []byte(entry.Value), nil
}

func (s *GormStore) Set(ctx context.Context, key string, value []byte) error {
	entry := models.KVEntry{Key: key, Value: string(value)}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"entry_value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("gorm set %s: %w", key, err)
	}
	return nil
}

func (s *GormStore) Name() string { return "gorm:" + s.db.Dialector.Name() }

// Close is a no-op; the connection belongs to database.Manager.
func (s *GormStore) Close() error { return nil }
