package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee representa un trabajador de la constructora.
type Employee struct {
	ID         string
	Name       string
	Email      string
	Phone      string
	Role       string // cargo: maestro de obra, ingeniero, etc.
	Department string
	Salary     decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
