package services

import (
	"testing"

	"StudioCRMGo/models"

	"github.com/stretchr/testify/assert"
)

func TestCanAccessModule_NilUser(t *testing.T) {
	assert.False(t, CanAccessModule(nil, nil, models.ModuleFinance))
}

func TestCanAccessModule_SuperAdminBypass(t *testing.T) {
	user := &models.User{ID: "u1", Role: models.RoleSuperAdmin}

	// 无任何授权记录也放行
	assert.True(t, CanAccessModule(user, nil, models.ModuleFinance))
	assert.True(t, CanAccessModule(user, nil, models.ModuleSettings))
}

func TestCanAccessModule_DeveloperBypass(t *testing.T) {
	user := &models.User{ID: "u1", Role: models.RoleDeveloper}

	assert.True(t, CanAccessModule(user, nil, models.ModuleFinance))
}

func TestCanAccessModule_AdminUsesGrants(t *testing.T) {
	user := &models.User{ID: "u1", Role: models.RoleAdmin}
	grants := []models.ModuleGrant{
		{UserID: "u1", Module: models.ModuleFinance, HasAccess: true},
		{UserID: "u1", Module: models.ModuleLeads, HasAccess: false},
	}

	assert.True(t, CanAccessModule(user, grants, models.ModuleFinance))
	assert.False(t, CanAccessModule(user, grants, models.ModuleLeads))
}

func TestCanAccessModule_AdminNoGrantFailsClosed(t *testing.T) {
	user := &models.User{ID: "u1", Role: models.RoleAdmin}
	grants := []models.ModuleGrant{
		{UserID: "u1", Module: models.ModuleFinance, HasAccess: true},
	}

	// 没有对应授权记录时默认拒绝
	assert.False(t, CanAccessModule(user, grants, models.ModuleTickets))
}

func TestCanAccessModule_BaseUserDenied(t *testing.T) {
	user := &models.User{ID: "u1", Role: models.RoleUser}
	grants := []models.ModuleGrant{
		{UserID: "u1", Module: models.ModuleFinance, HasAccess: true},
	}

	// USER角色即使有授权记录也不放行
	assert.False(t, CanAccessModule(user, grants, models.ModuleFinance))
}

func TestCanBypassDisabledModule(t *testing.T) {
	assert.True(t, CanBypassDisabledModule(&models.User{Role: models.RoleDeveloper}))
	assert.False(t, CanBypassDisabledModule(&models.User{Role: models.RoleSuperAdmin}))
	assert.False(t, CanBypassDisabledModule(nil))
}

func TestCanManageModules(t *testing.T) {
	assert.True(t, CanManageModules(&models.User{Role: models.RoleDeveloper}))
	assert.True(t, CanManageModules(&models.User{Role: models.RoleSuperAdmin}))
	assert.False(t, CanManageModules(&models.User{Role: models.RoleAdmin}))
	assert.False(t, CanManageModules(&models.User{Role: models.RoleUser}))
	assert.False(t, CanManageModules(nil))
}
