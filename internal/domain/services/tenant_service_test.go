package services

import (
	"testing"

	"boardinghouse-http-service/internal/domain/models"

	"github.com/stretchr/testify/assert"
)

func TestRegisterTenant_AssignsRoomAndFlipsStatus(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTenantService(db, testConfig())

	room := models.Room{RoomNumber: "101", Status: models.RoomStatusVacant}
	assert.NoError(t, db.Create(&room).Error)

	tenant := &models.Tenant{
		FullName:   "Juan Dela Cruz",
		Username:   "juan",
		Password:   "password123",
		RoomNumber: "101",
	}
	assert.NoError(t, svc.RegisterTenant(tenant))

	assert.NotNil(t, tenant.RoomID)
	assert.Equal(t, room.ID, *tenant.RoomID)
	assert.Equal(t, models.TenantStatusActive, tenant.Status)
	assert.NotNil(t, tenant.MoveInDate)

	var got models.Room
	assert.NoError(t, db.First(&got, room.ID).Error)
	assert.Equal(t, models.RoomStatusOccupied, got.Status)
}

func TestRegisterTenant_UnresolvableRoomStaysUnassigned(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTenantService(db, testConfig())

	tenant := &models.Tenant{
		FullName:   "Ana Reyes",
		Username:   "ana",
		Password:   "password123",
		RoomNumber: "no-such-room",
	}
	assert.NoError(t, svc.RegisterTenant(tenant))
	assert.Nil(t, tenant.RoomID)

	got, err := svc.GetTenantByUsername("ana")
	assert.NoError(t, err)
	assert.Nil(t, got.RoomID)
}

func TestRegisterTenant_DuplicateUsernameRefused(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTenantService(db, testConfig())

	first := &models.Tenant{FullName: "First", Username: "taken", Password: "password123"}
	assert.NoError(t, svc.RegisterTenant(first))

	second := &models.Tenant{FullName: "Second", Username: "taken", Password: "password123"}
	err := svc.RegisterTenant(second)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestRegisterTenant_HashesPassword(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTenantService(db, testConfig())

	tenant := &models.Tenant{FullName: "Pedro", Username: "pedro", Password: "plaintext1"}
	assert.NoError(t, svc.RegisterTenant(tenant))

	var got models.Tenant
	assert.NoError(t, db.Where("username = ?", "pedro").First(&got).Error)
	assert.NotEqual(t, "plaintext1", got.Password)
	assert.True(t, models.CheckPasswordHash("plaintext1", got.Password))
}

func TestUpdateProfile_TouchesOnlyEditableFields(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTenantService(db, testConfig())

	room := models.Room{RoomNumber: "102", Status: models.RoomStatusVacant}
	assert.NoError(t, db.Create(&room).Error)

	tenant := &models.Tenant{
		FullName:   "Old Name",
		Username:   "editme",
		Password:   "password123",
		RoomNumber: "102",
	}
	assert.NoError(t, svc.RegisterTenant(tenant))

	err := svc.UpdateProfile("editme", TenantProfileUpdate{
		FullName:      "New Name",
		Gender:        "Female",
		Age:           28,
		Address:       "123 Main St",
		ContactNumber: "09171234567",
	})
	assert.NoError(t, err)

	got, err := svc.GetTenantByUsername("editme")
	assert.NoError(t, err)
	assert.Equal(t, "New Name", got.FullName)
	assert.Equal(t, 28, got.Age)
	// Room assignment and status survive a profile update
	assert.NotNil(t, got.RoomID)
	assert.Equal(t, models.TenantStatusActive, got.Status)
	assert.Equal(t, "editme", got.Username)
}
