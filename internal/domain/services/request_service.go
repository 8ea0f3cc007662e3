package services

import (
	"time"

	"boardinghouse-http-service/internal/domain/models"
	"boardinghouse-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceRequestService defines the request service interface
type InterfaceRequestService interface {
	GetAllRequests() ([]models.Request, error)
	GetRequestsByTenant(tenantID uint) ([]models.Request, error)
	FileRequest(tenant *models.Tenant, title, description, category string) (*models.Request, error)
	UpdateRequest(id uint, status, notes string) error
	CountPending() (int64, error)
}

// RequestService provides maintenance request filing and handling
type RequestService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewRequestService creates a new request service
func NewRequestService(db *gorm.DB, cfg *config.Config) InterfaceRequestService {
	return &RequestService{
		DB:     db,
		Config: cfg,
	}
}

// 1. GetAllRequests returns all requests newest-first by filing date
func (s *RequestService) GetAllRequests() ([]models.Request, error) {
	var requests []models.Request
	if err := s.DB.Order("date_filed desc").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// 2. GetRequestsByTenant returns one tenant's requests newest-first
func (s *RequestService) GetRequestsByTenant(tenantID uint) ([]models.Request, error) {
	var requests []models.Request
	if err := s.DB.Where("tenant_id = ?", tenantID).Order("date_filed desc").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// 3. FileRequest inserts a request on behalf of the authenticated
// tenant. Tenant and room identity come from the tenant record, never
// from the client; status is forced to Pending and the filing date
// stamped here.
func (s *RequestService) FileRequest(tenant *models.Tenant, title, description, category string) (*models.Request, error) {
	if category == "" {
		category = "Maintenance"
	}

	var roomID uint
	if tenant.RoomID != nil {
		roomID = *tenant.RoomID
	}

	request := &models.Request{
		TenantID:    tenant.ID,
		RoomID:      roomID,
		Title:       title,
		Description: description,
		Category:    category,
		Status:      models.RequestStatusPending,
		DateFiled:   time.Now(),
	}

	if err := s.DB.Create(request).Error; err != nil {
		return nil, err
	}
	return request, nil
}

// 4. UpdateRequest sets status and notes, the only admin-mutable
// fields. A zero or unknown id is a silent no-op.
func (s *RequestService) UpdateRequest(id uint, status, notes string) error {
	if id == 0 {
		return nil
	}
	return s.DB.Model(&models.Request{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status": status,
			"notes":  notes,
		}).Error
}

// 5. CountPending counts requests still pending
func (s *RequestService) CountPending() (int64, error) {
	var count int64
	err := s.DB.Model(&models.Request{}).Where("status = ?", models.RequestStatusPending).Count(&count).Error
	return count, err
}
