package services

import (
	"time"

	"boardinghouse-http-service/internal/domain/models"
	"boardinghouse-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// DashboardSummary is the admin dashboard aggregate
type DashboardSummary struct {
	TotalTenants     int64            `json:"total_tenants"`
	OccupiedRooms    int64            `json:"occupied_rooms"`
	PendingRequests  int64            `json:"pending_requests"`
	OverduePayments  int64            `json:"overdue_payments"`
	RecentActivities []models.Payment `json:"recent_activities"`
}

// MonitoringReport is the reports page aggregate
type MonitoringReport struct {
	TotalRooms          int64           `json:"total_rooms"`
	OccupiedRooms       int64           `json:"occupied_rooms"`
	MaintenanceRequests int64           `json:"maintenance_requests"`
	UnpaidTenantsCount  int64           `json:"unpaid_tenants_count"`
	MonthlyIncome       float64         `json:"monthly_income"`
	GeneratedReports    []models.Report `json:"generated_reports"`
}

// InterfaceReportService defines the report service interface
type InterfaceReportService interface {
	GetDashboardSummary() (*DashboardSummary, error)
	GetMonitoringReport() (*MonitoringReport, error)
	MonthlyIncome(month time.Time) (float64, error)
	GenerateReport(report *models.Report) error
}

// ReportService provides read-side aggregation. Everything is
// recomputed per call from the live tables.
type ReportService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewReportService creates a new report service
func NewReportService(db *gorm.DB, cfg *config.Config) InterfaceReportService {
	return &ReportService{
		DB:     db,
		Config: cfg,
	}
}

// 1. GetDashboardSummary computes the dashboard counts and the bounded
// recent-activity feed
func (s *ReportService) GetDashboardSummary() (*DashboardSummary, error) {
	summary := &DashboardSummary{}

	if err := s.DB.Model(&models.Tenant{}).Count(&summary.TotalTenants).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Room{}).Where("status = ?", models.RoomStatusOccupied).Count(&summary.OccupiedRooms).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Request{}).Where("status = ?", models.RequestStatusPending).Count(&summary.PendingRequests).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Payment{}).Where("status = ?", models.PaymentStatusOverdue).Count(&summary.OverduePayments).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Order("payment_date desc").Limit(10).Find(&summary.RecentActivities).Error; err != nil {
		return nil, err
	}

	return summary, nil
}

// 2. GetMonitoringReport computes the reports page aggregates for the
// current month
func (s *ReportService) GetMonitoringReport() (*MonitoringReport, error) {
	report := &MonitoringReport{}

	if err := s.DB.Model(&models.Room{}).Count(&report.TotalRooms).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Room{}).Where("status = ?", models.RoomStatusOccupied).Count(&report.OccupiedRooms).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Request{}).Where("category = ?", "Maintenance").Count(&report.MaintenanceRequests).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Payment{}).
		Where("status = ? OR status = ?", models.PaymentStatusUnpaid, models.PaymentStatusOverdue).
		Count(&report.UnpaidTenantsCount).Error; err != nil {
		return nil, err
	}

	income, err := s.MonthlyIncome(time.Now())
	if err != nil {
		return nil, err
	}
	report.MonthlyIncome = income

	if err := s.DB.Order("generated_date desc").Find(&report.GeneratedReports).Error; err != nil {
		return nil, err
	}

	return report, nil
}

// 3. MonthlyIncome sums Paid payments whose date falls within the
// half-open interval [first of month, first of next month)
func (s *ReportService) MonthlyIncome(month time.Time) (float64, error) {
	startOfMonth := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	endOfMonth := startOfMonth.AddDate(0, 1, 0)

	var payments []models.Payment
	if err := s.DB.
		Where("status = ? AND payment_date >= ? AND payment_date < ?", models.PaymentStatusPaid, startOfMonth, endOfMonth).
		Find(&payments).Error; err != nil {
		return 0, err
	}

	var income float64
	for _, p := range payments {
		income += p.Amount
	}
	return income, nil
}

// 4. GenerateReport appends a report entry. Reports are never updated
// or deleted.
func (s *ReportService) GenerateReport(report *models.Report) error {
	report.ID = 0
	if report.GeneratedDate.IsZero() {
		report.GeneratedDate = time.Now()
	}
	return s.DB.Create(report).Error
}
