package services

import (
	"errors"
	"time"

	"boardinghouse-http-service/internal/domain/models"
	"boardinghouse-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceTenantService defines the tenant service interface
type InterfaceTenantService interface {
	GetAllTenants() ([]models.Tenant, error)
	GetTenantByID(id uint) (*models.Tenant, error)
	GetTenantByUsername(username string) (*models.Tenant, error)
	RegisterTenant(tenant *models.Tenant) error
	UpdateProfile(username string, profile TenantProfileUpdate) error
}

// TenantProfileUpdate carries the only tenant fields editable through
// the profile path. Room assignment, status and credentials are not
// reachable here.
type TenantProfileUpdate struct {
	FullName      string `json:"full_name"`
	Gender        string `json:"gender"`
	Age           int    `json:"age"`
	Address       string `json:"address"`
	ContactNumber string `json:"contact_number"`
}

// TenantService provides tenant registration and self-service
type TenantService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewTenantService creates a new tenant service
func NewTenantService(db *gorm.DB, cfg *config.Config) InterfaceTenantService {
	return &TenantService{
		DB:     db,
		Config: cfg,
	}
}

// 1. GetAllTenants returns all tenants
func (s *TenantService) GetAllTenants() ([]models.Tenant, error) {
	var tenants []models.Tenant
	if err := s.DB.Find(&tenants).Error; err != nil {
		return nil, err
	}
	return tenants, nil
}

// 2. GetTenantByID returns a tenant by id
func (s *TenantService) GetTenantByID(id uint) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := s.DB.First(&tenant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("tenant does not exist")
		}
		return nil, err
	}
	return &tenant, nil
}

// 3. GetTenantByUsername returns a tenant by username
func (s *TenantService) GetTenantByUsername(username string) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := s.DB.Where("username = ?", username).First(&tenant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("tenant does not exist")
		}
		return nil, err
	}
	return &tenant, nil
}

// 4. RegisterTenant creates a tenant, resolving the chosen room number
// to a room and flipping that room to Occupied. The room update and the
// tenant insert are two separate writes with no transactional boundary;
// a crash between them can leave the room Occupied with no tenant row.
func (s *TenantService) RegisterTenant(tenant *models.Tenant) error {
	// Username uniqueness within tenants
	var count int64
	if err := s.DB.Model(&models.Tenant{}).Where("username = ?", tenant.Username).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errors.New("tenant username already exists")
	}

	tenant.ID = 0
	if tenant.Status == "" {
		tenant.Status = models.TenantStatusActive
	}
	if tenant.MoveInDate == nil {
		now := time.Now()
		tenant.MoveInDate = &now
	}

	// Resolve the room number if one was chosen. An unresolvable number
	// still creates the tenant, just unassigned.
	if tenant.RoomNumber != "" {
		var room models.Room
		err := s.DB.Where("room_number = ?", tenant.RoomNumber).First(&room).Error
		if err == nil {
			tenant.RoomID = &room.ID

			if err := s.DB.Model(&models.Room{}).
				Where("id = ?", room.ID).
				Update("status", models.RoomStatusOccupied).Error; err != nil {
				return err
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
	}

	return s.DB.Create(tenant).Error
}

// 5. UpdateProfile updates the editable profile fields by username
func (s *TenantService) UpdateProfile(username string, profile TenantProfileUpdate) error {
	return s.DB.Model(&models.Tenant{}).
		Where("username = ?", username).
		Updates(map[string]interface{}{
			"full_name":      profile.FullName,
			"gender":         profile.Gender,
			"age":            profile.Age,
			"address":        profile.Address,
			"contact_number": profile.ContactNumber,
		}).Error
}
