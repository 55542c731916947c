package controllers

import (
	"errors"
	"net/http"

	"StudioCRMGo/config"
	"StudioCRMGo/models"
	"StudioCRMGo/services"

	"github.com/gin-gonic/gin"
)

// PinController 敏感视图PIN门接口
type PinController struct {
	gate *services.PinGate
}

func NewPinController(gate *services.PinGate) *PinController {
	return &PinController{gate: gate}
}

// Status 返回当前PIN门状态
func (pc *PinController) Status(c *gin.Context) {
	status, err := pc.gate.Status(c.Request.Context(), c.GetString("uid"))
	if err != nil {
		config.Logger.Errorw("获取PIN状态失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "服务器内部错误"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": status})
}

// Enable 开启PIN保护（进入锁定态）
func (pc *PinController) Enable(c *gin.Context) {
	if err := pc.gate.EnableProtection(c.Request.Context(), c.GetString("uid")); err != nil {
		config.Logger.Errorw("开启PIN保护失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "服务器内部错误"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "PIN保护已开启"})
}

// Disable 关闭PIN保护
func (pc *PinController) Disable(c *gin.Context) {
	if err := pc.gate.DisableProtection(c.Request.Context(), c.GetString("uid")); err != nil {
		config.Logger.Errorw("关闭PIN保护失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "服务器内部错误"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "PIN保护已关闭"})
}

// Unlock 校验PIN并解锁，解锁态仅在当前会话内有效
func (pc *PinController) Unlock(c *gin.Context) {
	var req models.PinUnlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请求格式错误"})
		return
	}

	if err := pc.gate.Unlock(c.Request.Context(), c.GetString("uid"), req.Pin); err != nil {
		if errors.Is(err, models.ErrPinMismatch) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": err.Error()})
			return
		}
		config.Logger.Errorw("PIN解锁失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "服务器内部错误"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "已解锁"})
}

// Lock 重新锁定
func (pc *PinController) Lock(c *gin.Context) {
	if err := pc.gate.Lock(c.Request.Context(), c.GetString("uid")); err != nil {
		config.Logger.Errorw("PIN锁定失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "服务器内部错误"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "已锁定"})
}
