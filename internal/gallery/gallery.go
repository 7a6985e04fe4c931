// SPDX-License-Identifier: MIT

// Package gallery stores saved themes and serves the public gallery.
package gallery

import (
	"errors"
	"fmt"
	"html"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/thatcatcamp/windpalette/internal/color"
	"github.com/thatcatcamp/windpalette/internal/models"
	"github.com/thatcatcamp/windpalette/internal/themes"
	"gorm.io/gorm"
)

var (
	ErrNotFound     = errors.New("theme not found")
	ErrForbidden    = errors.New("not allowed to change this theme")
	ErrInvalidTheme = errors.New("invalid theme")
)

const (
	MaxNameLength        = 100
	MaxDescriptionLength = 500
)

var textPolicy = bluemonday.StrictPolicy()

// ThemeInput is what a user submits when saving a theme.
type ThemeInput struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Primary      string `json:"primary"`
	Secondary    string `json:"secondary"`
	Accent       string `json:"accent"`
	BasePosition string `json:"basePosition"`
	IsPublic     bool   `json:"isPublic"`
}

// sanitizeText strips markup and keeps the plain text.
func sanitizeText(s string) string {
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(strings.TrimSpace(s))))
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidTheme, fmt.Sprintf(format, args...))
}

// normalize validates the input and returns its canonical form.
func (in ThemeInput) normalize() (ThemeInput, error) {
	out := in
	out.Name = sanitizeText(in.Name)
	out.Description = sanitizeText(in.Description)

	if n := utf8.RuneCountInString(out.Name); n == 0 || n > MaxNameLength {
		return out, invalid("name must be 1-%d characters", MaxNameLength)
	}
	if utf8.RuneCountInString(out.Description) > MaxDescriptionLength {
		return out, invalid("description must be at most %d characters", MaxDescriptionLength)
	}

	var err error
	if out.Primary, err = color.ParseHex(in.Primary); err != nil {
		return out, invalid("primary: %v", err)
	}
	if in.Secondary != "" {
		if out.Secondary, err = color.ParseHex(in.Secondary); err != nil {
			return out, invalid("secondary: %v", err)
		}
	}
	if in.Accent != "" {
		if in.Secondary == "" {
			return out, invalid("accent requires a secondary color")
		}
		if out.Accent, err = color.ParseHex(in.Accent); err != nil {
			return out, invalid("accent: %v", err)
		}
	}

	pos, err := color.ParseBasePosition(in.BasePosition)
	if err != nil {
		return out, invalid("%v", err)
	}
	out.BasePosition = string(pos)

	return out, nil
}

func (in ThemeInput) apply(t *models.Theme) {
	t.Name = in.Name
	t.Description = in.Description
	t.Primary = in.Primary
	t.Secondary = in.Secondary
	t.Accent = in.Accent
	t.BasePosition = in.BasePosition
	t.IsPublic = in.IsPublic
}

// Colors returns the brand colors of a saved theme.
func Colors(t *models.Theme) themes.ThemeColors {
	return themes.ThemeColors{Primary: t.Primary, Secondary: t.Secondary, Accent: t.Accent}
}

// Position returns the saved base position, defaulting to 500.
func Position(t *models.Theme) color.BasePosition {
	pos, err := color.ParseBasePosition(t.BasePosition)
	if err != nil {
		return color.DefaultPosition
	}
	return pos
}

// visibleTo reports whether viewerID (0 for anonymous) may see t.
func visibleTo(t *models.Theme, viewerID uint) bool {
	return t.IsPublic || (viewerID != 0 && t.UserID == viewerID)
}

// CreateTheme saves a new theme for userID
func CreateTheme(db *gorm.DB, userID uint, input ThemeInput) (*models.Theme, error) {
	in, err := input.normalize()
	if err != nil {
		return nil, err
	}

	theme := &models.Theme{
		ShareID: uuid.NewString(),
		UserID:  userID,
	}
	in.apply(theme)

	if err := db.Create(theme).Error; err != nil {
		return nil, fmt.Errorf("failed to create theme: %w", err)
	}
	return theme, nil
}

func findTheme(db *gorm.DB, query string, arg any) (*models.Theme, error) {
	var theme models.Theme
	err := db.Where(query, arg).First(&theme).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load theme: %w", err)
	}
	return &theme, nil
}

// GetTheme retrieves a theme by ID. Private themes of other users are
// reported as not found.
func GetTheme(db *gorm.DB, id, viewerID uint) (*models.Theme, error) {
	theme, err := findTheme(db, "id = ?", id)
	if err != nil {
		return nil, err
	}
	if !visibleTo(theme, viewerID) {
		return nil, ErrNotFound
	}
	return theme, nil
}

// GetThemeByShareID retrieves a theme by its share link ID
func GetThemeByShareID(db *gorm.DB, shareID string, viewerID uint) (*models.Theme, error) {
	if _, err := uuid.Parse(shareID); err != nil {
		return nil, ErrNotFound
	}
	theme, err := findTheme(db, "share_id = ?", shareID)
	if err != nil {
		return nil, err
	}
	if !visibleTo(theme, viewerID) {
		return nil, ErrNotFound
	}
	return theme, nil
}

// ListUserThemes returns a user's themes, newest first
func ListUserThemes(db *gorm.DB, userID uint) ([]models.Theme, error) {
	var list []models.Theme
	if err := db.Where("user_id = ?", userID).Order("updated_at DESC, id DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list themes: %w", err)
	}
	return list, nil
}

// UpdateTheme replaces the fields of a theme owned by userID
func UpdateTheme(db *gorm.DB, userID, id uint, input ThemeInput) (*models.Theme, error) {
	theme, err := GetTheme(db, id, userID)
	if err != nil {
		return nil, err
	}
	if theme.UserID != userID {
		return nil, ErrForbidden
	}

	in, err := input.normalize()
	if err != nil {
		return nil, err
	}
	in.apply(theme)

	if err := db.Save(theme).Error; err != nil {
		return nil, fmt.Errorf("failed to update theme: %w", err)
	}
	return theme, nil
}

// DeleteTheme soft-deletes a theme. Owners may delete their own themes and
// admins may delete any.
func DeleteTheme(db *gorm.DB, actor *models.User, id uint) error {
	theme, err := findTheme(db, "id = ?", id)
	if err != nil {
		return err
	}
	if theme.UserID != actor.ID && !actor.IsAdmin {
		if !theme.IsPublic {
			return ErrNotFound
		}
		return ErrForbidden
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("theme_id = ?", theme.ID).Delete(&models.ThemeLike{}).Error; err != nil {
			return fmt.Errorf("failed to delete likes: %w", err)
		}
		if err := tx.Delete(theme).Error; err != nil {
			return fmt.Errorf("failed to delete theme: %w", err)
		}
		return nil
	})
}
