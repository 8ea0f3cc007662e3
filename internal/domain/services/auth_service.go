package services

import (
	"errors"
	"strings"
	"time"

	"boardinghouse-http-service/internal/domain/models"
	"boardinghouse-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// Principal roles as carried in session tokens
const (
	RoleAdmin  = "admin"
	RoleTenant = "tenant"
)

// ErrInvalidCredentials is the single failure returned for any bad
// login. Callers must not distinguish unknown user from wrong password.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Principal is the authenticated identity bound to a session
type Principal struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// InterfaceAuthService defines the authentication service interface
type InterfaceAuthService interface {
	Authenticate(username, password string) (*Principal, error)
	RecordAdminLogin(adminID uint, ipAddress string) error
}

// AuthService resolves credentials to a principal by probing admin
// accounts first, then tenants
type AuthService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewAuthService creates a new authentication service
func NewAuthService(db *gorm.DB, cfg *config.Config) InterfaceAuthService {
	return &AuthService{
		DB:     db,
		Config: cfg,
	}
}

// Authenticate verifies a username/password pair and returns the
// matching principal, or ErrInvalidCredentials
func (s *AuthService) Authenticate(username, password string) (*Principal, error) {
	username = strings.TrimSpace(username)

	// 1) Try admin accounts
	var admin models.AdminAccount
	if err := s.DB.Where("username = ?", username).First(&admin).Error; err == nil {
		if models.CheckPasswordHash(password, admin.Password) {
			return &Principal{ID: admin.ID, Username: admin.Username, Role: RoleAdmin}, nil
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// 2) Try tenants
	var tenant models.Tenant
	if err := s.DB.Where("username = ?", username).First(&tenant).Error; err == nil {
		if models.CheckPasswordHash(password, tenant.Password) {
			return &Principal{ID: tenant.ID, Username: tenant.Username, Role: RoleTenant}, nil
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return nil, ErrInvalidCredentials
}

// RecordAdminLogin appends a login history row for an admin account
func (s *AuthService) RecordAdminLogin(adminID uint, ipAddress string) error {
	entry := models.LoginHistory{
		AdminAccountID: adminID,
		LoginAt:        time.Now(),
		IPAddress:      ipAddress,
	}
	return s.DB.Create(&entry).Error
}
