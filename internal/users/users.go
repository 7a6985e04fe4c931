package users

import (
	"errors"
	"fmt"
	"strings"

	"github.com/thatcatcamp/windpalette/internal/models"
	"gorm.io/gorm"
)

// UpsertGoogleUser creates or refreshes the user behind a Google sign-in.
// Users are matched by Google ID first, then by email. If a soft-deleted
// user exists with this email, it will be restored.
func UpsertGoogleUser(db *gorm.DB, googleID, email, name, avatarURL string) (*models.User, error) {
	// Normalize email to lowercase
	email = strings.ToLower(strings.TrimSpace(email))
	if googleID == "" || email == "" {
		return nil, fmt.Errorf("google id and email are required")
	}

	var user models.User
	err := db.Unscoped().Where("google_id = ?", googleID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = db.Unscoped().Where("email = ?", email).First(&user).Error
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		// No user found - create new user
		user = models.User{
			GoogleID:  googleID,
			Email:     email,
			Name:      name,
			AvatarURL: avatarURL,
		}
		if err := db.Create(&user).Error; err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		return &user, nil
	case err != nil:
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	// Found a user, possibly soft-deleted - refresh profile and restore
	if err := db.Unscoped().Model(&user).Updates(map[string]interface{}{
		"deleted_at": nil,
		"google_id":  googleID,
		"email":      email,
		"name":       name,
		"avatar_url": avatarURL,
	}).Error; err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return GetUserByID(db, user.ID)
}

// GetUserByEmail retrieves a user by email address
func GetUserByEmail(db *gorm.DB, email string) (*models.User, error) {
	// Normalize email to lowercase
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	result := db.Where("email = ?", email).First(&user)
	if result.Error != nil {
		return nil, fmt.Errorf("user not found: %w", result.Error)
	}
	return &user, nil
}

// GetUserByID retrieves a user by ID
func GetUserByID(db *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	result := db.First(&user, id)
	if result.Error != nil {
		return nil, fmt.Errorf("user not found: %w", result.Error)
	}
	return &user, nil
}

// ListUsers returns all users
func ListUsers(db *gorm.DB) ([]models.User, error) {
	var users []models.User
	result := db.Order("id").Find(&users)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list users: %w", result.Error)
	}
	return users, nil
}

// DeleteUser soft-deletes a user
func DeleteUser(db *gorm.DB, id uint) error {
	result := db.Delete(&models.User{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("user not found")
	}
	return nil
}

// SetAdmin grants or revokes admin rights
func SetAdmin(db *gorm.DB, id uint, admin bool) error {
	result := db.Model(&models.User{}).Where("id = ?", id).Update("is_admin", admin)
	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("user not found")
	}
	return nil
}
