// SPDX-License-Identifier: MIT
package gallery

import (
	"fmt"
	"strings"

	"github.com/thatcatcamp/windpalette/internal/models"
	"gorm.io/gorm"
)

// Sort orders for the public gallery.
const (
	SortRecent  = "recent"
	SortPopular = "popular"
)

const (
	DefaultLimit = 24
	MaxLimit     = 100
)

// ListOptions filters and pages the public gallery.
type ListOptions struct {
	Sort   string
	Query  string
	Limit  int
	Offset int
}

// ListResult is one page of the gallery plus the total match count.
type ListResult struct {
	Themes []models.Theme `json:"themes"`
	Total  int64          `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

func (o ListOptions) withDefaults() ListOptions {
	if o.Sort != SortPopular {
		o.Sort = SortRecent
	}
	if o.Limit <= 0 {
		o.Limit = DefaultLimit
	}
	if o.Limit > MaxLimit {
		o.Limit = MaxLimit
	}
	if o.Offset < 0 {
		o.Offset = 0
	}
	o.Query = strings.TrimSpace(o.Query)
	return o
}

// escapeLike escapes LIKE wildcards in user input with '!'
func escapeLike(s string) string {
	return strings.NewReplacer("!", "!!", "%", "!%", "_", "!_").Replace(s)
}

// ListPublicThemes searches public themes by name and description
func ListPublicThemes(db *gorm.DB, opts ListOptions) (*ListResult, error) {
	opts = opts.withDefaults()

	query := db.Model(&models.Theme{}).Where("is_public = ?", true)
	if opts.Query != "" {
		pattern := "%" + escapeLike(strings.ToLower(opts.Query)) + "%"
		query = query.Where("(LOWER(name) LIKE ? ESCAPE '!' OR LOWER(description) LIKE ? ESCAPE '!')", pattern, pattern)
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count themes: %w", err)
	}

	order := "created_at DESC, id DESC"
	if opts.Sort == SortPopular {
		order = "like_count DESC, id DESC"
	}

	var list []models.Theme
	if err := query.Order(order).Limit(opts.Limit).Offset(opts.Offset).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list themes: %w", err)
	}

	return &ListResult{Themes: list, Total: total, Limit: opts.Limit, Offset: opts.Offset}, nil
}
