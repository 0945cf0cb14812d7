package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO resumen completo del back office, recalculado en cada
// invocación a partir de las colecciones completas.
type DashboardSummaryDTO struct {
	Counts          DashboardCounts        `json:"counts"`
	TotalExpenses   decimal.Decimal        `json:"total_expenses"`
	PendingPayments decimal.Decimal        `json:"pending_payments"`
	Year            int                    `json:"year"`
	MonthlyExpenses []MonthlyExpenseDTO    `json:"monthly_expenses"` // 12 buckets, ene-dic
	TaskStats       []TaskStatDTO          `json:"task_stats"`
	Activities      []DashboardActivityDTO `json:"activities"`
	TopInventory    []TopInventoryItemDTO  `json:"top_inventory"`
}

// DashboardCounts cardinalidades simples por entidad.
type DashboardCounts struct {
	Employees int `json:"employees"`
	Customers int `json:"customers"`
	Projects  int `json:"projects"`
	Inventory int `json:"inventory"`
}

// MonthlyExpenseDTO un bucket mensual del histograma de gastos.
type MonthlyExpenseDTO struct {
	Month string          `json:"month"` // etiqueta corta: Ene, Feb, ...
	Total decimal.Decimal `json:"total"`
}

// TaskStatDTO distribución de obras por estado.
type TaskStatDTO struct {
	Status     string `json:"status"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
	Progress   int    `json:"progress"` // heurística de avance por estado
}

// DashboardActivityDTO entrada del feed con tiempo relativo ya renderizado.
type DashboardActivityDTO struct {
	Description string `json:"description"`
	Bold        string `json:"bold"`
	TimeAgo     string `json:"time_ago"`
}

// TopInventoryItemDTO artículo destacado del widget de bodega.
type TopInventoryItemDTO struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Unit     string `json:"unit"`
	LowStock bool   `json:"low_stock"`
}
