package services

import (
	"errors"
	"strings"

	"boardinghouse-http-service/internal/domain/models"
	"boardinghouse-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceAdminAccountService defines the admin account service interface
type InterfaceAdminAccountService interface {
	GetProfileByUsername(username string) (*models.AdminAccount, error)
	UpdateUsername(currentUsername, newUsername string) error
	UpdatePassword(username, currentPassword, newPassword string) error
	UpdateProfile(username, fullName, email, phone string) error
}

// AdminAccountService manages the signed-in admin's own account
type AdminAccountService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewAdminAccountService creates a new admin account service
func NewAdminAccountService(db *gorm.DB, cfg *config.Config) InterfaceAdminAccountService {
	return &AdminAccountService{
		DB:     db,
		Config: cfg,
	}
}

// 1. GetProfileByUsername resolves the admin profile. A missing record
// yields a default-empty profile instead of an error.
func (s *AdminAccountService) GetProfileByUsername(username string) (*models.AdminAccount, error) {
	var admin models.AdminAccount
	if err := s.DB.Preload("LoginHistory").Where("username = ?", username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.AdminAccount{
				FullName:     "Admin User",
				LoginHistory: []models.LoginHistory{},
			}, nil
		}
		return nil, err
	}
	return &admin, nil
}

// 2. UpdateUsername changes the signed-in admin's username. A blank new
// username is a no-op. No uniqueness check is performed here.
func (s *AdminAccountService) UpdateUsername(currentUsername, newUsername string) error {
	newUsername = strings.TrimSpace(newUsername)
	if newUsername == "" {
		return nil
	}

	return s.DB.Model(&models.AdminAccount{}).
		Where("username = ?", currentUsername).
		Update("username", newUsername).Error
}

// 3. UpdatePassword re-hashes the password after verifying the current
// one. Every validation failure (blank fields, missing account, wrong
// current password) is a silent no-op: the stored hash is only ever
// replaced when the current password verifies.
func (s *AdminAccountService) UpdatePassword(username, currentPassword, newPassword string) error {
	if strings.TrimSpace(currentPassword) == "" || strings.TrimSpace(newPassword) == "" {
		return nil
	}

	var admin models.AdminAccount
	if err := s.DB.Where("username = ?", username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	if !models.CheckPasswordHash(currentPassword, admin.Password) {
		return nil
	}

	newHash, err := models.HashPassword(newPassword)
	if err != nil {
		return err
	}

	return s.DB.Model(&models.AdminAccount{}).
		Where("id = ?", admin.ID).
		Update("password", newHash).Error
}

// 4. UpdateProfile replaces the profile fields by username match
func (s *AdminAccountService) UpdateProfile(username, fullName, email, phone string) error {
	return s.DB.Model(&models.AdminAccount{}).
		Where("username = ?", username).
		Updates(map[string]interface{}{
			"full_name": fullName,
			"email":     email,
			"phone":     phone,
		}).Error
}
