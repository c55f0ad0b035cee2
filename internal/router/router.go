package router

import (
	"github.com/Viranga-Lakshani/Employees-Attendance-Manegement-System/internal/config"
	"github.com/Viranga-Lakshani/Employees-Attendance-Manegement-System/internal/handler"
	"github.com/Viranga-Lakshani/Employees-Attendance-Manegement-System/internal/middleware"
	"github.com/Viranga-Lakshani/Employees-Attendance-Manegement-System/internal/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine, static resources and API routes.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	if len(cfg.CORS.AllowOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
			AllowCredentials: true,
		}))
	}

	// single-page frontend
	r.Static("/static", "./web/static")
	r.StaticFile("/", "./web/static/index.html")

	api := r.Group("/api")

	api.GET("/health", handler.Health)

	authHandler := handler.NewAuthHandler(db, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.ExpireHours, cfg.Security.BcryptCost)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(
		middleware.AuthRequired(cfg.JWT.Secret, db),
		middleware.Audit(db),
	)

	adminOnly := middleware.RequireRoles(models.RoleAdmin)

	employeeHandler := handler.NewEmployeeHandler(db, cfg.Security.BcryptCost)
	protected.GET("/employees", employeeHandler.List)
	protected.GET("/employees/:id", employeeHandler.Get)
	protected.POST("/employees", adminOnly, employeeHandler.Create)
	protected.PUT("/employees/:id", adminOnly, employeeHandler.Update)
	protected.DELETE("/employees/:id", adminOnly, employeeHandler.Delete)

	attendanceHandler := handler.NewAttendanceHandler(db, cfg.Attendance)
	protected.POST("/attendance/checkin", attendanceHandler.CheckIn)
	protected.POST("/attendance/checkout", attendanceHandler.CheckOut)
	protected.GET("/attendance", attendanceHandler.List)
	protected.GET("/attendance/report", adminOnly, attendanceHandler.Report)

	exportHandler := handler.NewExportHandler(db)
	protected.GET("/attendance/export/csv", adminOnly, exportHandler.ExportCSV)
	protected.GET("/attendance/export/xlsx", adminOnly, exportHandler.ExportXLSX)

	auditHandler := handler.NewAuditHandler(db)
	protected.GET("/audit", adminOnly, auditHandler.List)

	return r
}
