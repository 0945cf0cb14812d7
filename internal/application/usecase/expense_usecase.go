package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ndiwanjo/constructora-api/internal/application/dto"
	"github.com/ndiwanjo/constructora-api/internal/domain"
	"github.com/ndiwanjo/constructora-api/internal/domain/entity"
	"github.com/ndiwanjo/constructora-api/internal/domain/repository"
)

// ExpenseUseCase casos de uso CRUD para gastos. El alta registra además una
// Activity dentro de la misma transacción.
type ExpenseUseCase struct {
	repo     repository.ExpenseRepository
	txRunner TxRunner
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(repo repository.ExpenseRepository, txRunner TxRunner) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo, txRunner: txRunner}
}

// Create valida la entrada y persiste gasto + entrada de feed atómicamente.
func (uc *ExpenseUseCase) Create(ctx context.Context, in dto.ExpenseRequest) (*dto.ExpenseResponse, error) {
	expense, err := buildExpense(uuid.New().String(), in)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	expense.CreatedAt = now
	expense.UpdatedAt = now

	activity := &entity.Activity{
		ID:          uuid.New().String(),
		Description: "Nuevo gasto registrado",
		Bold:        expense.Title,
		CreatedAt:   now,
	}
	err = uc.txRunner.Run(ctx, func(
		_ repository.ProjectRepository,
		_ repository.InventoryRepository,
		expenseRepo repository.ExpenseRepository,
		activityRepo repository.ActivityRepository,
	) error {
		if err := expenseRepo.Create(expense); err != nil {
			return err
		}
		return activityRepo.Create(activity)
	})
	if err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

// List devuelve todos los gastos, los más recientes primero.
func (uc *ExpenseUseCase) List() ([]*dto.ExpenseResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ExpenseResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toExpenseResponse(e))
	}
	return out, nil
}

// Update aplica los campos al gasto existente. ErrNotFound si el id no existe.
func (uc *ExpenseUseCase) Update(id string, in dto.ExpenseRequest) (*dto.ExpenseResponse, error) {
	updated, err := buildExpense(id, in)
	if err != nil {
		return nil, err
	}
	expense, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, domain.ErrNotFound
	}
	expense.Title = updated.Title
	expense.Amount = updated.Amount
	expense.Category = updated.Category
	expense.ProjectName = updated.ProjectName
	expense.UpdatedAt = time.Now()
	if err := uc.repo.Update(expense); err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

// Delete elimina el gasto. ErrNotFound si el id no existe.
func (uc *ExpenseUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func buildExpense(id string, in dto.ExpenseRequest) (*entity.Expense, error) {
	if err := requireField(in.Title, "title"); err != nil {
		return nil, err
	}
	amount, err := parseRequiredDecimalField(in.Amount, "amount")
	if err != nil {
		return nil, err
	}
	return &entity.Expense{
		ID:          id,
		Title:       in.Title,
		Amount:      amount,
		Category:    in.Category,
		ProjectName: in.ProjectName,
	}, nil
}

func toExpenseResponse(e *entity.Expense) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:          e.ID,
		Title:       e.Title,
		Amount:      e.Amount,
		Category:    e.Category,
		ProjectName: e.ProjectName,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
