package controllers

import (
	"errors"
	"net/http"

	"StudioCRMGo/config"
	"StudioCRMGo/models"
	"StudioCRMGo/services"

	"github.com/gin-gonic/gin"
)

// ModuleController 模块开关管理接口
type ModuleController struct {
	store *services.VisibilityStore
}

func NewModuleController(store *services.VisibilityStore) *ModuleController {
	return &ModuleController{store: store}
}

// currentUser 按uid加载当前用户
func currentUser(c *gin.Context) (*models.User, bool) {
	uid := c.GetString("uid")
	var user models.User
	if err := config.DB.Where("id = ?", uid).First(&user).Error; err != nil {
		config.Logger.Errorw("获取用户信息失败", "error", err, "uid", uid)
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "用户未找到"})
		return nil, false
	}
	return &user, true
}

// GetAll 返回全部模块配置（模块管理视图，仅开发者/超级管理员）
func (mc *ModuleController) GetAll(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	if !services.CanManageModules(user) {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "没有模块管理权限"})
		return
	}

	settings, err := mc.store.FetchAll()
	if err != nil {
		config.Logger.Errorw("获取模块配置失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "服务器内部错误"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": settings})
}

// GetEnabled 刷新并返回启用的模块名列表。
// 拉取失败时不报错：缓存已清空，导航端把空列表当作"全部可用"。
func (mc *ModuleController) GetEnabled(c *gin.Context) {
	if err := mc.store.FetchEnabled(); err != nil {
		config.Logger.Errorw("刷新模块开关缓存失败", "error", err)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": mc.store.Enabled()})
}

// Toggle 切换模块全局开关
func (mc *ModuleController) Toggle(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	if !services.CanManageModules(user) {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "没有模块管理权限"})
		return
	}

	var req models.ToggleModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请求格式错误"})
		return
	}

	name := c.Param("name")
	if err := mc.store.Toggle(name, req.IsEnabled); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "模块不存在"})
			return
		}
		config.Logger.Errorw("切换模块开关失败", "error", err, "module", name)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "服务器内部错误"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "模块状态已更新"})
}
