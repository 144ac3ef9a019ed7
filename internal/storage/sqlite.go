// Package storage provides the on-device persistent key-value store backing
// the session, plus an in-memory variant for tests.
package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type entry struct {
	Key       string `gorm:"primaryKey;column:key"`
	Value     []byte `gorm:"column:value"`
	UpdatedAt time.Time
}

func (entry) TableName() string {
	return "kv_entries"
}

// DB is a sqlite-backed key-value store. Values are opaque blobs keyed by
// string; the schema is a single automigrated table.
type DB struct {
	db *gorm.DB
}

// Open creates the database file (and its directory) if needed.
func Open(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("failed to create storage directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	if err := db.AutoMigrate(&entry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate storage: %w", err)
	}

	return &DB{db: db}, nil
}

// Get returns (nil, nil) for a missing key.
func (d *DB) Get(ctx context.Context, key string) ([]byte, error) {
	var e entry
	err := d.db.WithContext(ctx).First(&e, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return e.Value, nil
}

func (d *DB) Set(ctx context.Context, key string, value []byte) error {
	return d.db.WithContext(ctx).Save(&entry{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}).Error
}

// Remove is a no-op for a missing key.
func (d *DB) Remove(ctx context.Context, key string) error {
	return d.db.WithContext(ctx).Delete(&entry{}, "key = ?", key).Error
}

func (d *DB) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
