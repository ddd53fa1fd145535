package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/campusops/student-registry/internal/api/handler"
	"github.com/campusops/student-registry/internal/api/middleware"
	"github.com/campusops/student-registry/internal/core/service"
	"github.com/campusops/student-registry/internal/infrastructure/config"
	"github.com/campusops/student-registry/internal/infrastructure/db/sqlite"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *sql.DB, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("registry"))

	// --- Dependencies ---
	userRepo := sqlite.NewUserRepository(db)
	studentRepo := sqlite.NewStudentRepository(db)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	studentService := service.NewStudentService(studentRepo, log)
	authHandler := handler.NewAuthHandler(authService)
	studentHandler := handler.NewStudentHandler(studentService)
	authRequired := middleware.Auth(cfg.JWTSecret)
	adminRequired := middleware.RequireAdmin()

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", authHandler.Me, authRequired)

	// --- Student routes (bearer; mutations admin-only) ---
	students := e.Group("/api/students", authRequired)
	students.GET("", studentHandler.List)
	students.GET("/:id", studentHandler.Get)
	students.POST("", studentHandler.Create, adminRequired)
	students.PUT("/:id", studentHandler.Update, adminRequired)
	students.DELETE("/:id", studentHandler.Delete, adminRequired)

	// --- Probes and metrics (no auth required) ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(db).Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
