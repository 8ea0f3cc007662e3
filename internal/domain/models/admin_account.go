package models

import (
	"time"

	"gorm.io/gorm"
)

// AdminAccount represents a system administrator account
type AdminAccount struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"type:varchar(50);unique;not null" json:"username"`
	Password  string    `gorm:"type:varchar(100);not null" json:"-"`
	Role      string    `gorm:"type:varchar(20);default:'Admin'" json:"role"`
	FullName  string    `gorm:"type:varchar(100)" json:"full_name"`
	Email     string    `gorm:"type:varchar(100)" json:"email"`
	Phone     string    `gorm:"type:varchar(20)" json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	LoginHistory []LoginHistory `gorm:"foreignKey:AdminAccountID" json:"login_history,omitempty"`
}

// LoginHistory records one admin login
type LoginHistory struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	AdminAccountID uint      `gorm:"not null;index" json:"admin_account_id"`
	LoginAt        time.Time `json:"login_at"`
	IPAddress      string    `gorm:"type:varchar(45)" json:"ip_address"`
}

// BeforeCreate is a GORM hook that runs before creating a new record
func (a *AdminAccount) BeforeCreate(tx *gorm.DB) error {
	// Hash the password if one was provided
	if a.Password != "" && len(a.Password) < 60 {
		hashedPassword, err := HashPassword(a.Password)
		if err != nil {
			return err
		}
		a.Password = hashedPassword
	}
	return nil
}
