package routes

import (
	"StudioCRMGo/controllers"
	"StudioCRMGo/middleware"
	"StudioCRMGo/models"
	"StudioCRMGo/services"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.Engine,
	store *services.VisibilityStore,
	manager *services.TaskManager,
	gate *services.PinGate,
	counter *services.UnreadCounter,
) {
	taskController := controllers.NewTaskController(manager)
	moduleController := controllers.NewModuleController(store)
	pinController := controllers.NewPinController(gate)
	announcementController := controllers.NewAnnouncementController(counter)
	userController := controllers.UserController{}

	// 需要认证的路由
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware())
	{
		api.GET("/user", userController.GetUser)

		// 报价单任务族
		quoteTasks := api.Group("/quotes/:quoteId/tasks")
		quoteTasks.Use(middleware.RequireModule(store, models.ModuleClientPortal))
		{
			quoteTasks.GET("", taskController.List(models.ParentQuote, "quoteId"))
			quoteTasks.POST("", taskController.Create(models.ParentQuote, "quoteId"))
			quoteTasks.PUT("/:taskId", taskController.Update(models.ParentQuote, "quoteId"))
			quoteTasks.PATCH("/:taskId/toggle", taskController.Toggle(models.ParentQuote, "quoteId"))
			quoteTasks.DELETE("/:taskId", taskController.Delete(models.ParentQuote, "quoteId"))
		}

		// 客户账号任务族，接口形态与报价单一致
		clientTasks := api.Group("/clients/:clientId/tasks")
		clientTasks.Use(middleware.RequireModule(store, models.ModuleClientPortal))
		{
			clientTasks.GET("", taskController.List(models.ParentClient, "clientId"))
			clientTasks.POST("", taskController.Create(models.ParentClient, "clientId"))
			clientTasks.PUT("/:taskId", taskController.Update(models.ParentClient, "clientId"))
			clientTasks.PATCH("/:taskId/toggle", taskController.Toggle(models.ParentClient, "clientId"))
			clientTasks.DELETE("/:taskId", taskController.Delete(models.ParentClient, "clientId"))
		}

		// 模块开关
		api.GET("/modules", moduleController.GetAll)
		api.GET("/modules/enabled", moduleController.GetEnabled)
		api.PATCH("/modules/:name/toggle", moduleController.Toggle)

		// PIN门
		api.GET("/pin", pinController.Status)
		api.POST("/pin/enable", pinController.Enable)
		api.POST("/pin/disable", pinController.Disable)
		api.POST("/pin/unlock", pinController.Unlock)
		api.POST("/pin/lock", pinController.Lock)

		// 公告与未读通知
		api.GET("/announcements", announcementController.List)
		api.POST("/announcements", announcementController.Create)
		api.GET("/notifications/unread", announcementController.Unread)
		api.POST("/notifications/read", announcementController.MarkRead)
	}

	// 内部路由组（仅限服务器内部调用）
	internal := r.Group("/internal")
	internal.Use(middleware.InternalAuthMiddleware())
	{
		internal.POST("/notifications/bump", announcementController.Bump)
	}

	// 测试路由
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
