package models

import "time"

// Report represents a generated report entry, append-only
type Report struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ReportType    string    `gorm:"type:varchar(50)" json:"report_type"` // e.g. MonthlyIncome, RoomStatus
	Title         string    `gorm:"type:varchar(100)" json:"title"`
	Description   string    `gorm:"type:varchar(500)" json:"description"`
	GeneratedDate time.Time `gorm:"index" json:"generated_date"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
