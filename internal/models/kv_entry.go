package models

import (
	"time"

	"gorm.io/gorm"
)

// KVEntry is one row of the key-value table backing the SQL storage drivers.
type KVEntry struct {
	Key       string    `gorm:"column:entry_key;primaryKey;size:255"`
	Value     string    `gorm:"column:entry_value;type:text;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName pins the table name used by the migrations.
func (KVEntry) TableName() string {
	return "kv_entries"
}

// BeforeSave stamps the row with the write time.
func (e *KVEntry) BeforeSave(tx *gorm.DB) error {
	e.UpdatedAt = time.Now().UTC()
	return nil
}
