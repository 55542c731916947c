package controllers

import (
	"net/http"

	"StudioCRMGo/config"
	"StudioCRMGo/models"

	"github.com/gin-gonic/gin"
)

type UserController struct{}

// GetUser 返回当前登录用户信息
func (uc *UserController) GetUser(c *gin.Context) {
	uid := c.GetString("uid")
	if uid == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "用户未认证"})
		return
	}

	var user models.User
	if err := config.DB.Where("id = ?", uid).First(&user).Error; err != nil {
		config.Logger.Errorw("数据库查询失败", "error", err, "userID", uid)
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "用户未找到"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": models.UserResponse{
			ID:        user.ID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
			Role:      user.Role,
		},
	})
}
