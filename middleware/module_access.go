package middleware

import (
	"net/http"

	"StudioCRMGo/config"
	"StudioCRMGo/models"
	"StudioCRMGo/services"

	"github.com/gin-gonic/gin"
)

// RequireModule 模块准入中间件：先查全局开关（开发者角色可绕过停用态），
// 再按角色和授权记录判定访问权限
func RequireModule(store *services.VisibilityStore, module string) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetString("uid")

		var user models.User
		if err := config.DB.Where("id = ?", uid).First(&user).Error; err != nil {
			config.Logger.Errorw("获取用户信息失败", "error", err, "uid", uid)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "用户未找到"})
			return
		}

		if !store.IsEnabled(module) && !services.CanBypassDisabledModule(&user) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": "模块未启用"})
			return
		}

		var grants []models.ModuleGrant
		if err := config.DB.Where("user_id = ?", uid).Find(&grants).Error; err != nil {
			config.Logger.Errorw("获取模块授权失败", "error", err, "uid", uid)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "message": "服务器内部错误"})
			return
		}

		if !services.CanAccessModule(&user, grants, module) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": "没有访问该模块的权限"})
			return
		}

		c.Next()
	}
}
