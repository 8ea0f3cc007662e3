package services

import (
	"testing"
	"time"

	"boardinghouse-http-service/internal/domain/models"

	"github.com/stretchr/testify/assert"
)

func TestMonthlyIncome_SumsOnlyPaidWithinMonth(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReportService(db, testConfig())

	march := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	inMonth1 := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	inMonth2 := time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)
	before := time.Date(2026, 2, 28, 23, 59, 59, 0, time.UTC)
	nextFirst := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	payments := []models.Payment{
		{TenantID: 1, Amount: 1000, PaymentDate: &inMonth1, Status: models.PaymentStatusPaid},
		{TenantID: 1, Amount: 500, PaymentDate: &inMonth2, Status: models.PaymentStatusPaid},
		{TenantID: 1, Amount: 9999, PaymentDate: &before, Status: models.PaymentStatusPaid},
		{TenantID: 1, Amount: 8888, PaymentDate: &nextFirst, Status: models.PaymentStatusPaid},
		{TenantID: 1, Amount: 7777, PaymentDate: &inMonth1, Status: models.PaymentStatusUnpaid},
	}
	for i := range payments {
		assert.NoError(t, db.Create(&payments[i]).Error)
	}

	income, err := svc.MonthlyIncome(march)
	assert.NoError(t, err)
	assert.Equal(t, 1500.0, income)
}

func TestMonthlyIncome_FirstOfMonthIncluded(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReportService(db, testConfig())

	first := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	payment := models.Payment{TenantID: 1, Amount: 250, PaymentDate: &first, Status: models.PaymentStatusPaid}
	assert.NoError(t, db.Create(&payment).Error)

	income, err := svc.MonthlyIncome(time.Date(2026, 5, 20, 0, 0, 0, 0, time.UTC))
	assert.NoError(t, err)
	assert.Equal(t, 250.0, income)
}

func TestGetDashboardSummary(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReportService(db, testConfig())

	rooms := []models.Room{
		{RoomNumber: "101", Status: models.RoomStatusOccupied},
		{RoomNumber: "102", Status: models.RoomStatusOccupied},
		{RoomNumber: "103", Status: models.RoomStatusVacant},
	}
	for i := range rooms {
		assert.NoError(t, db.Create(&rooms[i]).Error)
	}

	tenants := []models.Tenant{
		{FullName: "A", Username: "a", Password: "password123"},
		{FullName: "B", Username: "b", Password: "password123"},
	}
	for i := range tenants {
		assert.NoError(t, db.Create(&tenants[i]).Error)
	}

	assert.NoError(t, db.Create(&models.Request{TenantID: 1, Title: "x", Status: models.RequestStatusPending, DateFiled: time.Now()}).Error)
	assert.NoError(t, db.Create(&models.Request{TenantID: 1, Title: "y", Status: models.RequestStatusResolved, DateFiled: time.Now()}).Error)

	now := time.Now()
	for i := 0; i < 12; i++ {
		date := now.Add(-time.Duration(i) * time.Hour)
		assert.NoError(t, db.Create(&models.Payment{TenantID: 1, Amount: float64(i), PaymentDate: &date, Status: models.PaymentStatusPaid}).Error)
	}
	overdueDate := now.Add(-30 * 24 * time.Hour)
	assert.NoError(t, db.Create(&models.Payment{TenantID: 2, Amount: 100, PaymentDate: &overdueDate, Status: models.PaymentStatusOverdue}).Error)

	summary, err := svc.GetDashboardSummary()
	assert.NoError(t, err)
	assert.Equal(t, int64(2), summary.TotalTenants)
	assert.Equal(t, int64(2), summary.OccupiedRooms)
	assert.Equal(t, int64(1), summary.PendingRequests)
	assert.Equal(t, int64(1), summary.OverduePayments)
	// The activity feed is capped at ten entries
	assert.Len(t, summary.RecentActivities, 10)
}

func TestGetMonitoringReport(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReportService(db, testConfig())

	assert.NoError(t, db.Create(&models.Room{RoomNumber: "101", Status: models.RoomStatusOccupied}).Error)
	assert.NoError(t, db.Create(&models.Room{RoomNumber: "102", Status: models.RoomStatusVacant}).Error)

	assert.NoError(t, db.Create(&models.Request{TenantID: 1, Category: "Maintenance", DateFiled: time.Now()}).Error)
	assert.NoError(t, db.Create(&models.Request{TenantID: 1, Category: "Complaint", DateFiled: time.Now()}).Error)

	now := time.Now()
	assert.NoError(t, db.Create(&models.Payment{TenantID: 1, Amount: 3500, PaymentDate: &now, Status: models.PaymentStatusPaid}).Error)
	assert.NoError(t, db.Create(&models.Payment{TenantID: 2, Amount: 3500, PaymentDate: &now, Status: models.PaymentStatusUnpaid}).Error)

	report, err := svc.GetMonitoringReport()
	assert.NoError(t, err)
	assert.Equal(t, int64(2), report.TotalRooms)
	assert.Equal(t, int64(1), report.OccupiedRooms)
	assert.Equal(t, int64(1), report.MaintenanceRequests)
	assert.Equal(t, int64(1), report.UnpaidTenantsCount)
	assert.Equal(t, 3500.0, report.MonthlyIncome)
}

func TestGenerateReport_DefaultsDateAndAppends(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReportService(db, testConfig())

	report := &models.Report{ReportType: "MonthlyIncome", Title: "March income"}
	assert.NoError(t, svc.GenerateReport(report))
	assert.False(t, report.GeneratedDate.IsZero())

	second := &models.Report{ID: 777, ReportType: "RoomStatus", Title: "Rooms"}
	assert.NoError(t, svc.GenerateReport(second))
	assert.NotEqual(t, uint(777), second.ID)

	var count int64
	assert.NoError(t, db.Model(&models.Report{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}
