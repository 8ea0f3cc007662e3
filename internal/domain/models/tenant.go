package models

import (
	"time"

	"gorm.io/gorm"
)

// Tenant statuses
const (
	TenantStatusActive   = "Active"
	TenantStatusMovedOut = "MovedOut"
)

// Tenant represents a boarding-house tenant with portal credentials
type Tenant struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	FullName      string     `gorm:"type:varchar(100);not null" json:"full_name"`
	Gender        string     `gorm:"type:varchar(10)" json:"gender"`
	Age           int        `json:"age"`
	Address       string     `gorm:"type:varchar(255)" json:"address"`
	ContactNumber string     `gorm:"type:varchar(20)" json:"contact_number"`
	Status        string     `gorm:"type:varchar(20);default:'Active'" json:"status"` // Active / MovedOut
	MoveInDate    *time.Time `json:"move_in_date"`
	RoomID        *uint      `json:"room_id"`
	// Denormalized for display, mirrors the assigned room's number
	RoomNumber string    `gorm:"type:varchar(20)" json:"room_number"`
	Username   string    `gorm:"type:varchar(50);unique;not null" json:"username"`
	Password   string    `gorm:"type:varchar(100);not null" json:"-"`
	Role       string    `gorm:"type:varchar(20);default:'Tenant'" json:"role"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relations
	Room     *Room     `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Payments []Payment `gorm:"foreignKey:TenantID" json:"payments,omitempty"`
	Requests []Request `gorm:"foreignKey:TenantID" json:"requests,omitempty"`
}

// BeforeCreate is a GORM hook that runs before creating a new record
func (t *Tenant) BeforeCreate(tx *gorm.DB) error {
	// Hash the password if it is present and not already hashed
	if t.Password != "" && len(t.Password) < 60 {
		hashedPassword, err := HashPassword(t.Password)
		if err != nil {
			return err
		}
		t.Password = hashedPassword
	}
	return nil
}

// BeforeSave is a GORM hook that runs before saving a record
func (t *Tenant) BeforeSave(tx *gorm.DB) error {
	// Hash the password if it is present and not already hashed
	if t.Password != "" && len(t.Password) < 60 {
		hashedPassword, err := HashPassword(t.Password)
		if err != nil {
			return err
		}
		t.Password = hashedPassword
	}
	return nil
}
