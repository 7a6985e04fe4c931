// SPDX-License-Identifier: MIT
package gallery

import (
	"errors"
	"fmt"

	"github.com/thatcatcamp/windpalette/internal/models"
	"gorm.io/gorm"
)

// ToggleLike likes the theme for userID, or removes an existing like.
// It returns whether the theme is now liked and its like count.
func ToggleLike(db *gorm.DB, userID, themeID uint) (bool, int64, error) {
	var liked bool
	var count int64

	err := db.Transaction(func(tx *gorm.DB) error {
		theme, err := GetTheme(tx, themeID, userID)
		if err != nil {
			return err
		}

		var like models.ThemeLike
		err = tx.Where("user_id = ? AND theme_id = ?", userID, theme.ID).First(&like).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(&models.ThemeLike{UserID: userID, ThemeID: theme.ID}).Error; err != nil {
				return fmt.Errorf("failed to like theme: %w", err)
			}
			liked = true
		case err != nil:
			return fmt.Errorf("failed to load like: %w", err)
		default:
			if err := tx.Delete(&like).Error; err != nil {
				return fmt.Errorf("failed to unlike theme: %w", err)
			}
		}

		// Recount rather than increment so the counter heals itself
		if err := tx.Model(&models.ThemeLike{}).Where("theme_id = ?", theme.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count likes: %w", err)
		}
		return tx.Model(theme).UpdateColumn("like_count", count).Error
	})
	if err != nil {
		return false, 0, err
	}
	return liked, count, nil
}

// HasLiked reports whether userID likes themeID.
func HasLiked(db *gorm.DB, userID, themeID uint) (bool, error) {
	var n int64
	if err := db.Model(&models.ThemeLike{}).Where("user_id = ? AND theme_id = ?", userID, themeID).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
