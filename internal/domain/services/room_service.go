package services

import (
	"errors"
	"strings"

	"boardinghouse-http-service/internal/domain/models"
	"boardinghouse-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// ErrRoomHasTenants refuses room deletion while tenants reference it
var ErrRoomHasTenants = errors.New("cannot delete this room because it has assigned tenants")

// InterfaceRoomService defines the room service interface
type InterfaceRoomService interface {
	GetAllRooms() ([]models.Room, error)
	GetVacantRooms() ([]models.Room, error)
	GetRoomByID(id uint) (*models.Room, error)
	CreateRoom(room *models.Room) error
	UpdateRoom(room *models.Room) error
	ArchiveRoom(id uint) error
	DeleteRoom(id uint) error
}

// RoomService provides room management
type RoomService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewRoomService creates a new room service
func NewRoomService(db *gorm.DB, cfg *config.Config) InterfaceRoomService {
	return &RoomService{
		DB:     db,
		Config: cfg,
	}
}

// NormalizeRoomStatus maps a blank status to Vacant and any other
// status string to capitalized-first-letter form
func NormalizeRoomStatus(status string) string {
	status = strings.TrimSpace(status)
	if status == "" {
		return models.RoomStatusVacant
	}
	return strings.ToUpper(status[:1]) + strings.ToLower(status[1:])
}

// 1. GetAllRooms returns all rooms ordered by room number ascending
func (s *RoomService) GetAllRooms() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Order("room_number asc").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

// 2. GetVacantRooms returns the rooms assignable at tenant registration
func (s *RoomService) GetVacantRooms() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Where("status = ?", models.RoomStatusVacant).Order("room_number asc").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

// 3. GetRoomByID returns a room by id
func (s *RoomService) GetRoomByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("room does not exist")
		}
		return nil, err
	}
	return &room, nil
}

// 4. CreateRoom adds a new room. A client-supplied id is ignored and
// the status defaulted/normalized.
func (s *RoomService) CreateRoom(room *models.Room) error {
	room.ID = 0
	room.Status = NormalizeRoomStatus(room.Status)
	return s.DB.Create(room).Error
}

// 5. UpdateRoom replaces the whole record by id. Updating a missing or
// zero id is a silent no-op.
func (s *RoomService) UpdateRoom(room *models.Room) error {
	if room.ID == 0 {
		return nil
	}
	return s.DB.Model(&models.Room{}).
		Where("id = ?", room.ID).
		Select("room_number", "room_type", "capacity", "current_occupants", "rent_price", "deposit", "status", "description").
		Updates(room).Error
}

// 6. ArchiveRoom forces the status to Maintenance. Current occupancy is
// not checked.
func (s *RoomService) ArchiveRoom(id uint) error {
	if id == 0 {
		return nil
	}
	return s.DB.Model(&models.Room{}).
		Where("id = ?", id).
		Update("status", models.RoomStatusMaintenance).Error
}

// 7. DeleteRoom hard-deletes a room unless tenants still reference it
func (s *RoomService) DeleteRoom(id uint) error {
	if id == 0 {
		return nil
	}

	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Target vanished, treated as a no-op
			return nil
		}
		return err
	}

	var count int64
	if err := s.DB.Model(&models.Tenant{}).Where("room_id = ?", room.ID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrRoomHasTenants
	}

	return s.DB.Delete(&room).Error
}
