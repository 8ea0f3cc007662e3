package models

import "time"

// Payment statuses
const (
	PaymentStatusPaid    = "Paid"
	PaymentStatusUnpaid  = "Unpaid"
	PaymentStatusOverdue = "Overdue"
)

// Payment represents a rent or deposit payment record
type Payment struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	TenantID      uint       `gorm:"not null;index" json:"tenant_id"`
	RoomID        uint       `gorm:"index" json:"room_id"`
	Amount        float64    `json:"amount"`
	PaymentDate   *time.Time `gorm:"index" json:"payment_date"`
	PaymentMethod string     `gorm:"type:varchar(30);default:'Cash'" json:"payment_method"`        // Cash, InstaPay, ...
	PaymentType   string     `gorm:"type:varchar(30);default:'Monthly Rent'" json:"payment_type"`  // Monthly Rent, Deposit, ...
	Status        string     `gorm:"type:varchar(20);default:'Paid'" json:"status"`                // Paid / Unpaid / Overdue
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
