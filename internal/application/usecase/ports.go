package usecase

import (
	"context"

	"github.com/ndiwanjo/constructora-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con repositorios atados a una misma transacción.
// Lo usan los use cases cuya creación registra además una Activity: el alta de
// la entidad y su entrada de feed se confirman o revierten juntas.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		projectRepo repository.ProjectRepository,
		inventoryRepo repository.InventoryRepository,
		expenseRepo repository.ExpenseRepository,
		activityRepo repository.ActivityRepository,
	) error) error
}
