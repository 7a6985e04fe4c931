// SPDX-License-Identifier: MIT
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents an account signed in through Google
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	GoogleID  string         `gorm:"uniqueIndex;not null" json:"-"`
	Email     string         `gorm:"uniqueIndex;not null" json:"email"`
	Name      string         `json:"name"`
	AvatarURL string         `json:"avatarUrl"`
	IsAdmin   bool           `gorm:"default:false" json:"isAdmin"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Themes []Theme `gorm:"foreignKey:UserID" json:"-"`
}

// Theme is a saved color theme. Secondary and Accent are empty for one or
// two color themes.
type Theme struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	ShareID      string         `gorm:"uniqueIndex;size:36;not null" json:"shareId"`
	UserID       uint           `gorm:"index;not null" json:"userId"`
	Name         string         `gorm:"size:100;not null" json:"name"`
	Description  string         `gorm:"size:500" json:"description"`
	Primary      string         `gorm:"column:primary_color;size:7;not null" json:"primary"`
	Secondary    string         `gorm:"column:secondary_color;size:7" json:"secondary"`
	Accent       string         `gorm:"column:accent_color;size:7" json:"accent"`
	BasePosition string         `gorm:"size:1;default:5" json:"basePosition"`
	IsPublic     bool           `gorm:"default:false;index" json:"isPublic"`
	LikeCount    int64          `gorm:"default:0;index" json:"likeCount"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// ThemeLike records that a user liked a theme
type ThemeLike struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_theme_like"`
	ThemeID   uint `gorm:"not null;uniqueIndex:idx_theme_like"`
	CreatedAt time.Time
}

// CacheEntry is one row of the key-value cache
type CacheEntry struct {
	Key       string     `gorm:"column:cache_key;primaryKey;size:191"`
	Value     string     `gorm:"type:text;not null"`
	ExpiresAt *time.Time `gorm:"index"` // nil never expires
}

// Expired reports whether the entry is stale at now.
func (e CacheEntry) Expired(now time.Time) bool {
	return e.ExpiresAt != nil && !now.Before(*e.ExpiresAt)
}

// TableName overrides for consistent naming
func (User) TableName() string {
	return "users"
}

func (Theme) TableName() string {
	return "themes"
}

func (ThemeLike) TableName() string {
	return "theme_likes"
}

func (CacheEntry) TableName() string {
	return "cache_entries"
}

// All lists every model for auto-migration.
func All() []interface{} {
	return []interface{}{&User{}, &Theme{}, &ThemeLike{}, &CacheEntry{}}
}
