package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseRequest entrada para crear o actualizar un gasto.
// Amount llega como texto desde el formulario.
type ExpenseRequest struct {
	Title       string `json:"title" validate:"required"`
	Amount      string `json:"amount" validate:"required"`
	Category    string `json:"category"`
	ProjectName string `json:"project_name"`
}

// ExpenseResponse salida de un gasto.
type ExpenseResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	ProjectName string          `json:"project_name"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
