package services

import (
	"StudioCRMGo/models"
)

// CanAccessModule 判断用户能否访问指定模块，纯函数，无副作用。
// 规则：SUPER_ADMIN 与 DEVELOPER 无条件放行；ADMIN 按授权记录判断，
// 无记录时拒绝（默认关闭）；USER 一律拒绝（固定可见模块由调用方处理，如 dashboard）。
func CanAccessModule(user *models.User, grants []models.ModuleGrant, module string) bool {
	if user == nil {
		return false
	}

	switch user.Role {
	case models.RoleSuperAdmin, models.RoleDeveloper:
		return true
	case models.RoleAdmin:
		for _, grant := range grants {
			if grant.Module == module {
				return grant.HasAccess
			}
		}
		return false
	default:
		return false
	}
}

// CanBypassDisabledModule 全局停用的模块对开发者角色始终可见
func CanBypassDisabledModule(user *models.User) bool {
	return user != nil && user.Role == models.RoleDeveloper
}

// CanManageModules 模块管理视图仅限开发者和超级管理员
func CanManageModules(user *models.User) bool {
	if user == nil {
		return false
	}
	return user.Role == models.RoleDeveloper || user.Role == models.RoleSuperAdmin
}
