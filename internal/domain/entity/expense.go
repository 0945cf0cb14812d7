package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseCategoryPending marca gastos pendientes de pago; alimenta el resumen financiero.
// La categoría es texto libre, pero "pending" y "paid" tienen semántica especial.
const (
	ExpenseCategoryPending = "pending"
	ExpenseCategoryPaid    = "paid"
)

// Expense representa un gasto de la constructora, opcionalmente asociado a
// una obra por nombre (texto libre, no es foreign key).
type Expense struct {
	ID          string
	Title       string
	Amount      decimal.Decimal
	Category    string
	ProjectName string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
