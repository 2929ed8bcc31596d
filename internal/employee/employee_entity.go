package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID         uint            `gorm:"primaryKey"`
	Name       string          `gorm:"type:varchar(200);not null"`
	Email      string          `gorm:"type:varchar(200);uniqueIndex:uq_employees_email;not null"`
	Position   string          `gorm:"type:varchar(200);not null"`
	Department string          `gorm:"type:varchar(200);not null;index"`
	Salary     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	HireDate   time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
