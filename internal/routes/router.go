// internal/routes/router.go
package routes

import (
	"smpj_backend/internal/auth"
	"smpj_backend/internal/handlers"
	"smpj_backend/internal/middleware"
	"smpj_backend/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB, tokens *auth.Manager) *gin.Engine {
	r := gin.Default()

	authH := handlers.NewAuthHandler(db, tokens)
	empH := handlers.NewEmployeeHandler(db)
	schedH := handlers.NewScheduleHandler(db)
	attH := handlers.NewAttendanceHandler(db)
	repH := handlers.NewReportHandler(db)

	authed := middleware.AuthRequired(tokens, db)
	ownerOnly := middleware.RequireRoles(models.RoleOwner)
	supervisorUp := middleware.RequireRoles(models.RoleSupervisor, models.RoleOwner)
	anyRole := middleware.RequireRoles(models.RoleEmployee, models.RoleSupervisor, models.RoleOwner)

	api := r.Group("/api")
	{
		api.GET("/health", handlers.Health)
		api.POST("/auth/login", authH.Login)
		api.GET("/auth/me", authed, authH.Me)
		api.POST("/auth/change-password", authed, authH.ChangePassword)
	}

	employees := api.Group("/employees", authed)
	{
		employees.GET("", empH.List)
		employees.GET("/:id", empH.Get)
		employees.POST("", ownerOnly, empH.Create)
		employees.PUT("/:id", ownerOnly, empH.Update)
		employees.DELETE("/:id", ownerOnly, empH.Delete)
	}

	schedules := api.Group("/schedules", authed)
	{
		schedules.GET("", schedH.List)
		schedules.POST("", supervisorUp, schedH.Create)
		schedules.DELETE("/:id", supervisorUp, schedH.Delete)
	}

	attendance := api.Group("/attendance", authed)
	{
		attendance.GET("", attH.List)
		attendance.POST("/checkin", anyRole, attH.CheckIn)
		attendance.POST("/checkout", anyRole, attH.CheckOut)
	}

	reports := api.Group("/reports", authed)
	{
		reports.GET("/owner-summary", ownerOnly, repH.OwnerSummary)
		reports.GET("/attendance/export", supervisorUp, repH.ExportAttendance)
	}

	return r
}
