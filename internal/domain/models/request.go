package models

import "time"

// Request statuses
const (
	RequestStatusPending    = "Pending"
	RequestStatusInProgress = "In Progress"
	RequestStatusResolved   = "Resolved"
)

// Request represents a maintenance or service request filed by a tenant
type Request struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	TenantID    uint      `gorm:"not null;index" json:"tenant_id"`
	RoomID      uint      `gorm:"index" json:"room_id"`
	Title       string    `gorm:"type:varchar(100)" json:"title"`
	Description string    `gorm:"type:varchar(500)" json:"description"`
	Category    string    `gorm:"type:varchar(30);default:'Maintenance'" json:"category"`
	Status      string    `gorm:"type:varchar(20);default:'Pending'" json:"status"` // Pending / In Progress / Resolved
	// Set once at filing, never touched by updates
	DateFiled time.Time `gorm:"index" json:"date_filed"`
	Notes     string    `gorm:"type:varchar(500)" json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
