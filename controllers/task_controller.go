package controllers

import (
	"errors"
	"net/http"

	"StudioCRMGo/config"
	"StudioCRMGo/models"
	"StudioCRMGo/services"

	"github.com/gin-gonic/gin"
)

// TaskController 客户门户任务接口，报价单和客户账号两个任务族共用同一组处理器
type TaskController struct {
	manager *services.TaskManager
}

func NewTaskController(manager *services.TaskManager) *TaskController {
	return &TaskController{manager: manager}
}

// respondTaskError 按错误类型映射HTTP状态码，原始错误只写服务端日志
func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "任务或所属对象不存在"})
	case errors.Is(err, models.ErrTitleRequired):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
	default:
		config.Logger.Errorw("任务操作失败", "error", err, "path", c.Request.URL.Path)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "服务器内部错误"})
	}
}

// List 返回范围内任务列表和进度统计
func (tc *TaskController) List(kind models.ParentKind, paramName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		scope := models.TaskScope{Kind: kind, ParentID: c.Param(paramName)}

		tasks, err := tc.manager.List(scope)
		if err != nil {
			respondTaskError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": models.TaskListResponse{
				Tasks:    tasks,
				Progress: services.Summarize(tasks),
			},
		})
	}
}

// Create 创建任务
func (tc *TaskController) Create(kind models.ParentKind, paramName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		scope := models.TaskScope{Kind: kind, ParentID: c.Param(paramName)}

		var req models.CreateTaskRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请求格式错误"})
			return
		}

		task, err := tc.manager.Create(scope, req)
		if err != nil {
			respondTaskError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": task})
	}
}

// Update 部分更新任务标题/描述
func (tc *TaskController) Update(kind models.ParentKind, paramName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		scope := models.TaskScope{Kind: kind, ParentID: c.Param(paramName)}

		var req models.UpdateTaskRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请求格式错误"})
			return
		}

		task, err := tc.manager.Update(scope, c.Param("taskId"), req)
		if err != nil {
			respondTaskError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": task})
	}
}

// Toggle 翻转任务完成状态，完成人取当前登录用户
func (tc *TaskController) Toggle(kind models.ParentKind, paramName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		scope := models.TaskScope{Kind: kind, ParentID: c.Param(paramName)}
		uid := c.GetString("uid")

		task, err := tc.manager.Toggle(scope, c.Param("taskId"), uid)
		if err != nil {
			respondTaskError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": task})
	}
}

// Delete 删除任务（硬删除）
func (tc *TaskController) Delete(kind models.ParentKind, paramName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		scope := models.TaskScope{Kind: kind, ParentID: c.Param(paramName)}

		if err := tc.manager.Delete(scope, c.Param("taskId")); err != nil {
			respondTaskError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "任务已删除"})
	}
}
