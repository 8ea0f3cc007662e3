package services

import (
	"testing"
	"time"

	"boardinghouse-http-service/internal/domain/models"

	"github.com/stretchr/testify/assert"
)

func TestRecordPayment_DefaultsDateAndStatus(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPaymentService(db, testConfig())

	payment := &models.Payment{TenantID: 1, Amount: 3500}
	assert.NoError(t, svc.RecordPayment(payment))

	assert.NotNil(t, payment.PaymentDate)
	assert.WithinDuration(t, time.Now(), *payment.PaymentDate, 5*time.Second)
	assert.Equal(t, models.PaymentStatusPaid, payment.Status)
}

func TestRecordPayment_KeepsExplicitValues(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPaymentService(db, testConfig())

	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	payment := &models.Payment{
		TenantID:    1,
		Amount:      2000,
		PaymentDate: &date,
		Status:      models.PaymentStatusUnpaid,
	}
	assert.NoError(t, svc.RecordPayment(payment))

	assert.True(t, payment.PaymentDate.Equal(date))
	assert.Equal(t, models.PaymentStatusUnpaid, payment.Status)
}

func TestRecordPayment_NegativeAmountRefused(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPaymentService(db, testConfig())

	err := svc.RecordPayment(&models.Payment{TenantID: 1, Amount: -1})
	assert.ErrorIs(t, err, ErrNegativeAmount)

	payments, err := svc.GetAllPayments()
	assert.NoError(t, err)
	assert.Empty(t, payments)
}

func TestRecordPayment_ZeroAmountAllowed(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPaymentService(db, testConfig())

	assert.NoError(t, svc.RecordPayment(&models.Payment{TenantID: 1, Amount: 0}))
}

func TestGetPaymentsByTenant_NewestFirst(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPaymentService(db, testConfig())

	older := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, svc.RecordPayment(&models.Payment{TenantID: 7, Amount: 100, PaymentDate: &older}))
	assert.NoError(t, svc.RecordPayment(&models.Payment{TenantID: 7, Amount: 200, PaymentDate: &newer}))
	assert.NoError(t, svc.RecordPayment(&models.Payment{TenantID: 8, Amount: 300}))

	payments, err := svc.GetPaymentsByTenant(7)
	assert.NoError(t, err)
	assert.Len(t, payments, 2)
	assert.Equal(t, 200.0, payments[0].Amount)
	assert.Equal(t, 100.0, payments[1].Amount)
}

func TestGetRecentPayments_Bounded(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPaymentService(db, testConfig())

	for i := 0; i < 15; i++ {
		date := time.Date(2026, 1, 1+i, 0, 0, 0, 0, time.UTC)
		assert.NoError(t, svc.RecordPayment(&models.Payment{TenantID: 1, Amount: float64(i), PaymentDate: &date}))
	}

	payments, err := svc.GetRecentPayments(10)
	assert.NoError(t, err)
	assert.Len(t, payments, 10)
	assert.Equal(t, 14.0, payments[0].Amount)
}
