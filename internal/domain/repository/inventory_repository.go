package repository

import "github.com/ndiwanjo/constructora-api/internal/domain/entity"

// InventoryRepository define el puerto de persistencia para InventoryItem.
// List devuelve los artículos más recientes primero.
type InventoryRepository interface {
	Create(item *entity.InventoryItem) error
	GetByID(id string) (*entity.InventoryItem, error)
	List() ([]*entity.InventoryItem, error)
	Update(item *entity.InventoryItem) error
	Delete(id string) error
}
