package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/DiyaJain6/Task-Bridge/constants"
	"github.com/DiyaJain6/Task-Bridge/controllers"
	"github.com/DiyaJain6/Task-Bridge/engine"
	"github.com/DiyaJain6/Task-Bridge/middleware"
	"github.com/DiyaJain6/Task-Bridge/store"
)

// Deps carries everything the router needs; tests inject memory stores here.
type Deps struct {
	Users         store.UserStore
	Notifications store.NotificationStore
	Audit         store.AuditStore
	Engine        *engine.Engine
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestID())

	authController := controllers.AuthController{Users: d.Users}
	taskController := controllers.TaskController{Engine: d.Engine}
	userController := controllers.UserController{Engine: d.Engine, Users: d.Users}
	notificationController := controllers.NotificationController{Users: d.Users, Notifications: d.Notifications}
	messageController := controllers.MessageController{Engine: d.Engine}
	adminController := controllers.AdminController{Engine: d.Engine, Audit: d.Audit}

	r.POST("/auth/register", authController.Register)
	r.POST("/auth/login", authController.Login)
	r.POST("/auth/forgot-password", authController.ForgotPassword)
	r.POST("/auth/reset-password", authController.ResetPassword)
	r.GET("/admin/public/settings", adminController.PublicSettings)

	authed := r.Group("/", middleware.AuthMiddleware())

	tasks := authed.Group("/tasks")
	tasks.POST("", taskController.Create)
	tasks.GET("", taskController.List)
	tasks.GET("/claimable", taskController.Claimable)
	tasks.GET("/assigned", taskController.Assigned)
	tasks.GET("/finance-stats", taskController.FinanceStats)
	tasks.PUT("/:id/claim", taskController.Claim)
	tasks.PUT("/:id/start", taskController.Start)
	tasks.PUT("/:id/complete", taskController.Complete)
	tasks.PUT("/:id/reject", taskController.Reject)
	tasks.PUT("/:id/rerequest", taskController.ReRequest)
	tasks.PUT("/:id/reassign", taskController.Reassign)
	tasks.PUT("/:id/resolve", taskController.Resolve)
	tasks.PUT("/:id/quality-score", taskController.QualityScore)
	tasks.PUT("/:id/backup-assignee", taskController.BackupAssignee)

	users := authed.Group("/users")
	users.GET("", middleware.RoleMiddleware(constants.RoleAdmin), userController.List)
	users.GET("/employees", userController.Employees)
	users.GET("/current", userController.Current)
	users.PUT("/availability", userController.UpdateAvailability)
	users.PUT("/:id/role", middleware.RoleMiddleware(constants.RoleAdmin), userController.UpdateRole)
	users.PUT("/:id/status", middleware.RoleMiddleware(constants.RoleAdmin), userController.ToggleStatus)
	users.DELETE("/:id", middleware.RoleMiddleware(constants.RoleAdmin), userController.Delete)

	notifications := authed.Group("/notifications")
	notifications.GET("", notificationController.List)
	notifications.GET("/unread-count", notificationController.UnreadCount)
	notifications.PUT("/:id/read", notificationController.MarkRead)

	messages := authed.Group("/messages")
	messages.GET("", messageController.List)
	messages.POST("", messageController.Send)

	admin := authed.Group("/admin", middleware.RoleMiddleware(constants.RoleAdmin))
	admin.GET("/settings", adminController.Settings)
	admin.POST("/settings", adminController.UpdateSetting)
	admin.GET("/logs", adminController.Logs)

	return r
}
