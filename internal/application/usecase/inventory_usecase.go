package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ndiwanjo/constructora-api/internal/application/dto"
	"github.com/ndiwanjo/constructora-api/internal/domain"
	"github.com/ndiwanjo/constructora-api/internal/domain/entity"
	"github.com/ndiwanjo/constructora-api/internal/domain/repository"
)

// InventoryUseCase casos de uso CRUD para artículos de bodega. El alta
// registra además una Activity dentro de la misma transacción.
type InventoryUseCase struct {
	repo     repository.InventoryRepository
	txRunner TxRunner
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(repo repository.InventoryRepository, txRunner TxRunner) *InventoryUseCase {
	return &InventoryUseCase{repo: repo, txRunner: txRunner}
}

// Create valida la entrada y persiste artículo + entrada de feed atómicamente.
func (uc *InventoryUseCase) Create(ctx context.Context, in dto.InventoryItemRequest) (*dto.InventoryItemResponse, error) {
	item, err := buildInventoryItem(uuid.New().String(), in)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now

	activity := &entity.Activity{
		ID:          uuid.New().String(),
		Description: "Nuevo artículo de inventario",
		Bold:        item.Name,
		CreatedAt:   now,
	}
	err = uc.txRunner.Run(ctx, func(
		_ repository.ProjectRepository,
		inventoryRepo repository.InventoryRepository,
		_ repository.ExpenseRepository,
		activityRepo repository.ActivityRepository,
	) error {
		if err := inventoryRepo.Create(item); err != nil {
			return err
		}
		return activityRepo.Create(activity)
	})
	if err != nil {
		return nil, err
	}
	return toInventoryItemResponse(item), nil
}

// List devuelve todos los artículos, los más recientes primero.
func (uc *InventoryUseCase) List() ([]*dto.InventoryItemResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InventoryItemResponse, 0, len(list))
	for _, i := range list {
		out = append(out, toInventoryItemResponse(i))
	}
	return out, nil
}

// Update aplica los campos al artículo existente. ErrNotFound si el id no existe.
func (uc *InventoryUseCase) Update(id string, in dto.InventoryItemRequest) (*dto.InventoryItemResponse, error) {
	updated, err := buildInventoryItem(id, in)
	if err != nil {
		return nil, err
	}
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	item.Name = updated.Name
	item.Quantity = updated.Quantity
	item.Unit = updated.Unit
	item.Price = updated.Price
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toInventoryItemResponse(item), nil
}

// Delete elimina el artículo. ErrNotFound si el id no existe.
func (uc *InventoryUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func buildInventoryItem(id string, in dto.InventoryItemRequest) (*entity.InventoryItem, error) {
	if err := requireField(in.Name, "name"); err != nil {
		return nil, err
	}
	quantity, err := parseIntField(in.Quantity, "quantity")
	if err != nil {
		return nil, err
	}
	if quantity < 0 {
		return nil, fmt.Errorf("%w: quantity no puede ser negativo", domain.ErrInvalidInput)
	}
	price, err := parseDecimalField(in.Price, "price")
	if err != nil {
		return nil, err
	}
	return &entity.InventoryItem{
		ID:       id,
		Name:     in.Name,
		Quantity: quantity,
		Unit:     in.Unit,
		Price:    price,
	}, nil
}

func toInventoryItemResponse(i *entity.InventoryItem) *dto.InventoryItemResponse {
	return &dto.InventoryItemResponse{
		ID:         i.ID,
		Name:       i.Name,
		Quantity:   i.Quantity,
		Unit:       i.Unit,
		Price:      i.Price,
		TotalValue: i.TotalValue(),
		LowStock:   i.LowStock(),
		CreatedAt:  i.CreatedAt,
		UpdatedAt:  i.UpdatedAt,
	}
}
