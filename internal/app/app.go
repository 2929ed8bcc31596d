package app

import (
	"errors"
	"os"

	"go-employee-api/internal/employee"
	"go-employee-api/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects the infrastructure and registers every module on
// the router. A missing DATABASE_URL is a fatal startup condition.
func BuildApp(router *gin.Engine, logger *zap.Logger) error {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return errors.New("DATABASE_URL is required")
	}

	db, err := connection.ConnectGORMWithRetry(dsn, 5)
	if err != nil {
		return err
	}

	if err := db.AutoMigrate(&employee.Employee{}); err != nil {
		return err
	}
	logger.Info("database schema up to date")

	registerModules(router, db, logger)
	return nil
}
