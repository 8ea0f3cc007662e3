package models

import "time"

// Room statuses
const (
	RoomStatusVacant      = "Vacant"
	RoomStatusOccupied    = "Occupied"
	RoomStatusMaintenance = "Maintenance"
)

// Room represents a boarding-house room
type Room struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	RoomNumber       string    `gorm:"type:varchar(20);not null" json:"room_number"`
	RoomType         string    `gorm:"type:varchar(50)" json:"room_type"`
	Capacity         int       `gorm:"default:1" json:"capacity"`
	CurrentOccupants int       `gorm:"default:0" json:"current_occupants"`
	RentPrice        float64   `json:"rent_price"`
	Deposit          float64   `json:"deposit"`
	Status           string    `gorm:"type:varchar(20);default:'Vacant'" json:"status"` // Vacant / Occupied / Maintenance
	Description      string    `gorm:"type:varchar(255)" json:"description"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	// Relations
	Tenants []Tenant `gorm:"foreignKey:RoomID" json:"tenants,omitempty"`
}
