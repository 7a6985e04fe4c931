// SPDX-License-Identifier: MIT

// Package kv is a small key-value cache with per-entry expiry.
package kv

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/thatcatcamp/windpalette/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is a key-value cache. A ttl <= 0 stores the value without expiry.
// Expired entries read as misses.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	PurgeExpired(ctx context.Context) (int64, error)
}

// GormStore keeps entries in the cache_entries table.
type GormStore struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormStore returns a store over db. The CacheEntry table must exist.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db, now: time.Now}
}

func (s *GormStore) Get(ctx context.Context, key string) (string, bool, error) {
	var entry models.CacheEntry
	err := s.db.WithContext(ctx).First(&entry, "cache_key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read cache entry: %w", err)
	}
	if entry.Expired(s.now().UTC()) {
		return "", false, nil
	}
	return entry.Value, true, nil
}

func (s *GormStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	entry := models.CacheEntry{Key: key, Value: value}
	if ttl > 0 {
		expires := s.now().UTC().Add(ttl)
		entry.ExpiresAt = &expires
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "cache_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "expires_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	return nil
}

func (s *GormStore) Delete(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Delete(&models.CacheEntry{}, "cache_key = ?", key).Error; err != nil {
		return fmt.Errorf("failed to delete cache entry: %w", err)
	}
	return nil
}

// PurgeExpired removes stale rows and returns how many were deleted.
func (s *GormStore) PurgeExpired(ctx context.Context) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("expires_at IS NOT NULL AND expires_at <= ?", s.now().UTC()).
		Delete(&models.CacheEntry{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to purge cache: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// MemoryStore is an in-process Store for callers without a database, such
// as one-off CLI commands.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]models.CacheEntry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]models.CacheEntry), now: time.Now}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok || entry.Expired(s.now()) {
		return "", false, nil
	}
	return entry.Value, true, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := models.CacheEntry{Key: key, Value: value}
	if ttl > 0 {
		expires := s.now().Add(ttl)
		entry.ExpiresAt = &expires
	}
	s.entries[key] = entry
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

func (s *MemoryStore) PurgeExpired(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	var n int64
	for key, entry := range s.entries {
		if entry.Expired(now) {
			delete(s.entries, key)
			n++
		}
	}
	return n, nil
}
