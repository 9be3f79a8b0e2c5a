// Package storage persists the transaction and goal collections in a
// key-value store. Each collection lives under its own key as a JSON array.
package storage

import (
	"context"
	"errors"
	"fmt"

	"fincontrol/internal/config"

	"gorm.io/gorm"
)

// ErrKeyNotFound is returned by Get when the key has never been written.
var ErrKeyNotFound = errors.New("storage: key not found")

// KeyValueStore is the minimal contract a storage backend has to meet.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Name() string
	Close() error
}

// NewStore builds the backend selected by cfg.StorageDriver. db is only used
// by the SQL drivers and may be nil otherwise.
func NewStore(cfg *config.Config, db *gorm.DB) (KeyValueStore, error) {
	switch cfg.StorageDriver {
	case config.DriverMemory, "":
		return NewMemoryStore(), nil
	case config.DriverSQLite, config.DriverPostgres:
		if db == nil {
			return nil, fmt.Errorf("storage: driver %q needs a database connection", cfg.StorageDriver)
		}
		return NewGormStore(db), nil
	case config.DriverRedis:
		redisCfg := DefaultRedisConfig()
		redisCfg.Addr = cfg.RedisAddr
		redisCfg.Password = cfg.RedisPassword
		redisCfg.DB = cfg.RedisDB
		redisCfg.KeyPrefix = cfg.RedisKeyPrefix
		return NewRedisStore(redisCfg)
	default:
		return nil, fmt.Errorf("storage: unknown driver %q", cfg.StorageDriver)
	}
}
