package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmployeeRequest entrada para crear o actualizar un trabajador.
// Salary llega como texto desde el formulario; el use case lo valida y convierte.
type EmployeeRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Salary     string `json:"salary"`
}

// EmployeeResponse salida de un trabajador.
type EmployeeResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	Role       string          `json:"role"`
	Department string          `json:"department"`
	Salary     decimal.Decimal `json:"salary"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
