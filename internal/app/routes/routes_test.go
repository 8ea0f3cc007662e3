package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"boardinghouse-http-service/internal/domain/models"
	"boardinghouse-http-service/internal/domain/services"
	"boardinghouse-http-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *config.Config, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	err = db.AutoMigrate(
		&models.Room{},
		&models.Tenant{},
		&models.Payment{},
		&models.Request{},
		&models.Report{},
		&models.AdminAccount{},
		&models.LoginHistory{},
	)
	assert.NoError(t, err)

	// Redis is deliberately unreachable; the router must still come up
	// and auth must degrade to skipping the revocation check
	cfg := &config.Config{
		JWTSecretKey: "test-secret-key",
		RedisHost:    "127.0.0.1",
		RedisPort:    "1",
	}

	return SetupRouter(db, cfg), cfg, db
}

func TestTenantRegistrationNotExposedAnonymously(t *testing.T) {
	r, _, db := setupTestRouter(t)

	room := models.Room{RoomNumber: "101", Status: models.RoomStatusVacant}
	assert.NoError(t, db.Create(&room).Error)

	// No anonymous route exposes the tenant roster
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/register", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	// No anonymous route creates tenants or flips rooms
	body := `{"full_name":"Intruder","username":"intruder","password":"password123","room_number":"101"}`
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var tenantCount int64
	assert.NoError(t, db.Model(&models.Tenant{}).Count(&tenantCount).Error)
	assert.Equal(t, int64(0), tenantCount)

	var got models.Room
	assert.NoError(t, db.First(&got, room.ID).Error)
	assert.Equal(t, models.RoomStatusVacant, got.Status)
}

func TestTenantRegistrationRequiresAdminSession(t *testing.T) {
	r, cfg, _ := setupTestRouter(t)

	// Without a session the roster is unreachable
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/tenants", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// A tenant session is not enough
	jwtService := services.NewJWTService(cfg)
	tenantToken, err := jwtService.GenerateToken(2, "juan", services.RoleTenant)
	assert.NoError(t, err)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/tenants", nil)
	req.Header.Set("Authorization", "Bearer "+tenantToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// An admin session reaches the registration view
	adminToken, err := jwtService.GenerateToken(1, "admin", services.RoleAdmin)
	assert.NoError(t, err)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/admin/tenants", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
