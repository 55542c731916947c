package controllers

import (
	"net/http"
	"time"

	"StudioCRMGo/config"
	"StudioCRMGo/models"
	"StudioCRMGo/services"
	"StudioCRMGo/utils"

	"github.com/gin-gonic/gin"
)

// AnnouncementController 公告与未读通知计数接口，客户端固定间隔轮询
type AnnouncementController struct {
	counter *services.UnreadCounter
}

func NewAnnouncementController(counter *services.UnreadCounter) *AnnouncementController {
	return &AnnouncementController{counter: counter}
}

// List 返回公告列表（新到旧）
func (ac *AnnouncementController) List(c *gin.Context) {
	var announcements []models.Announcement
	if err := config.DB.Order("created_at desc").Limit(50).Find(&announcements).Error; err != nil {
		config.Logger.Errorw("获取公告列表失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "服务器内部错误"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": announcements})
}

// Create 发布公告（仅管理员及以上）
func (ac *AnnouncementController) Create(c *gin.Context) {
	role := models.Role(c.GetString("role"))
	if role != models.RoleSuperAdmin && role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "没有发布公告的权限"})
		return
	}

	var req models.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请求格式错误"})
		return
	}

	announcement := models.Announcement{
		ID:        utils.GenerateID(),
		Title:     req.Title,
		Content:   req.Content,
		CreatedBy: c.GetString("uid"),
		CreatedAt: time.Now(),
	}
	if err := config.DB.Create(&announcement).Error; err != nil {
		config.Logger.Errorw("发布公告失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "服务器内部错误"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": announcement})
}

// Unread 返回当前用户未读通知数
func (ac *AnnouncementController) Unread(c *gin.Context) {
	count, err := ac.counter.Unread(c.Request.Context(), c.GetString("uid"))
	if err != nil {
		config.Logger.Errorw("获取未读计数失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "服务器内部错误"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": models.UnreadResponse{Unread: count}})
}

// MarkRead 未读计数清零
func (ac *AnnouncementController) MarkRead(c *gin.Context) {
	if err := ac.counter.MarkRead(c.Request.Context(), c.GetString("uid")); err != nil {
		config.Logger.Errorw("清除未读计数失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "服务器内部错误"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Bump 内部接口：未读计数加一（新通知产生时由内部流程调用）
func (ac *AnnouncementController) Bump(c *gin.Context) {
	uid := c.Query("uid")
	if uid == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "缺少uid参数"})
		return
	}
	count, err := ac.counter.Bump(c.Request.Context(), uid)
	if err != nil {
		config.Logger.Errorw("增加未读计数失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "服务器内部错误"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": models.UnreadResponse{Unread: count}})
}
