package services

import (
	"errors"
	"time"

	"boardinghouse-http-service/internal/domain/models"
	"boardinghouse-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// ErrNegativeAmount refuses payment records with a negative amount
var ErrNegativeAmount = errors.New("payment amount must not be negative")

// InterfacePaymentService defines the payment service interface
type InterfacePaymentService interface {
	GetAllPayments() ([]models.Payment, error)
	GetPaymentsByTenant(tenantID uint) ([]models.Payment, error)
	GetRecentPayments(limit int) ([]models.Payment, error)
	RecordPayment(payment *models.Payment) error
}

// PaymentService provides payment recording and history
type PaymentService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewPaymentService creates a new payment service
func NewPaymentService(db *gorm.DB, cfg *config.Config) InterfacePaymentService {
	return &PaymentService{
		DB:     db,
		Config: cfg,
	}
}

// 1. GetAllPayments returns all payments newest-first by payment date
func (s *PaymentService) GetAllPayments() ([]models.Payment, error) {
	var payments []models.Payment
	if err := s.DB.Order("payment_date desc").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// 2. GetPaymentsByTenant returns one tenant's payments newest-first
func (s *PaymentService) GetPaymentsByTenant(tenantID uint) ([]models.Payment, error) {
	var payments []models.Payment
	if err := s.DB.Where("tenant_id = ?", tenantID).Order("payment_date desc").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// 3. GetRecentPayments returns the most recent payments, bounded, for
// the dashboard activity feed
func (s *PaymentService) GetRecentPayments(limit int) ([]models.Payment, error) {
	var payments []models.Payment
	if err := s.DB.Order("payment_date desc").Limit(limit).Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// 4. RecordPayment inserts a payment with date and status defaults
func (s *PaymentService) RecordPayment(payment *models.Payment) error {
	if payment.Amount < 0 {
		return ErrNegativeAmount
	}

	payment.ID = 0
	if payment.PaymentDate == nil {
		now := time.Now()
		payment.PaymentDate = &now
	}
	if payment.Status == "" {
		payment.Status = models.PaymentStatusPaid
	}

	return s.DB.Create(payment).Error
}
