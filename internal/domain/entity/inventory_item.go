package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LowStockThreshold unidades por debajo de las cuales un artículo se marca en rojo.
const LowStockThreshold = 10

// InventoryItem representa un material o herramienta en bodega.
type InventoryItem struct {
	ID        string
	Name      string
	Quantity  int
	Unit      string // bolsas, m3, unidades, etc.
	Price     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TotalValue devuelve quantity × price. Se calcula al leer, nunca se almacena.
func (i *InventoryItem) TotalValue() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// LowStock indica si el artículo está por debajo del umbral de reposición.
func (i *InventoryItem) LowStock() bool {
	return i.Quantity < LowStockThreshold
}
