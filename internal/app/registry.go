package app

import (
	"net/http"

	"go-employee-api/internal/employee"
	"go-employee-api/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// registerModules wires repositories, services and handlers once at
// process start; none of them holds per-request state.
func registerModules(router *gin.Engine, db *gorm.DB, logger *zap.Logger) {
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(logger))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Repositories ---
	employeeRepo := employee.NewRepository(db)

	// --- Services ---
	employeeService := employee.NewService(employeeRepo, logger)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService, logger)

	// --- Routes Registration ---
	employee.RegisterRoutes(router, employeeHandler)
}
