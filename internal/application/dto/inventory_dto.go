package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItemRequest entrada para crear o actualizar un artículo de bodega.
// Quantity y Price llegan como texto desde el formulario.
type InventoryItemRequest struct {
	Name     string `json:"name" validate:"required"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
	Price    string `json:"price"`
}

// InventoryItemResponse salida de un artículo. TotalValue = quantity × price,
// derivado al leer, nunca almacenado.
type InventoryItemResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	Unit       string          `json:"unit"`
	Price      decimal.Decimal `json:"price"`
	TotalValue decimal.Decimal `json:"total_value"`
	LowStock   bool            `json:"low_stock"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
