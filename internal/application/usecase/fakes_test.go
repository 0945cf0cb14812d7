package usecase_test

import (
	"context"

	"github.com/ndiwanjo/constructora-api/internal/domain"
	"github.com/ndiwanjo/constructora-api/internal/domain/entity"
	"github.com/ndiwanjo/constructora-api/internal/domain/repository"
)

// Repositorios en memoria para los tests de use cases. Reproducen el contrato
// de los repos de PostgreSQL: GetByID devuelve (nil, nil) si no existe,
// Update/Delete devuelven ErrNotFound sobre ids desconocidos.

type fakeEmployeeRepo struct {
	items []*entity.Employee
	err   error
}

func (r *fakeEmployeeRepo) Create(e *entity.Employee) error {
	if r.err != nil {
		return r.err
	}
	r.items = append(r.items, e)
	return nil
}

func (r *fakeEmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, e := range r.items {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

func (r *fakeEmployeeRepo) List() ([]*entity.Employee, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.items, nil
}

func (r *fakeEmployeeRepo) Update(e *entity.Employee) error {
	if r.err != nil {
		return r.err
	}
	for i, existing := range r.items {
		if existing.ID == e.ID {
			r.items[i] = e
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeEmployeeRepo) Delete(id string) error {
	if r.err != nil {
		return r.err
	}
	for i, e := range r.items {
		if e.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeCustomerRepo struct {
	items []*entity.Customer
	err   error
}

func (r *fakeCustomerRepo) Create(c *entity.Customer) error {
	if r.err != nil {
		return r.err
	}
	r.items = append(r.items, c)
	return nil
}

func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, c := range r.items {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) List() ([]*entity.Customer, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.items, nil
}

func (r *fakeCustomerRepo) Update(c *entity.Customer) error {
	if r.err != nil {
		return r.err
	}
	for i, existing := range r.items {
		if existing.ID == c.ID {
			r.items[i] = c
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeCustomerRepo) Delete(id string) error {
	if r.err != nil {
		return r.err
	}
	for i, c := range r.items {
		if c.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeProjectRepo struct {
	items []*entity.Project
	err   error
}

func (r *fakeProjectRepo) Create(p *entity.Project) error {
	if r.err != nil {
		return r.err
	}
	r.items = append(r.items, p)
	return nil
}

func (r *fakeProjectRepo) GetByID(id string) (*entity.Project, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, p := range r.items {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProjectRepo) List() ([]*entity.Project, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.items, nil
}

func (r *fakeProjectRepo) Update(p *entity.Project) error {
	if r.err != nil {
		return r.err
	}
	for i, existing := range r.items {
		if existing.ID == p.ID {
			r.items[i] = p
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeProjectRepo) Delete(id string) error {
	if r.err != nil {
		return r.err
	}
	for i, p := range r.items {
		if p.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeInventoryRepo struct {
	items []*entity.InventoryItem
	err   error
}

func (r *fakeInventoryRepo) Create(i *entity.InventoryItem) error {
	if r.err != nil {
		return r.err
	}
	r.items = append(r.items, i)
	return nil
}

func (r *fakeInventoryRepo) GetByID(id string) (*entity.InventoryItem, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, item := range r.items {
		if item.ID == id {
			return item, nil
		}
	}
	return nil, nil
}

func (r *fakeInventoryRepo) List() ([]*entity.InventoryItem, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.items, nil
}

func (r *fakeInventoryRepo) Update(i *entity.InventoryItem) error {
	if r.err != nil {
		return r.err
	}
	for idx, existing := range r.items {
		if existing.ID == i.ID {
			r.items[idx] = i
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeInventoryRepo) Delete(id string) error {
	if r.err != nil {
		return r.err
	}
	for i, item := range r.items {
		if item.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeExpenseRepo struct {
	items []*entity.Expense
	err   error
}

func (r *fakeExpenseRepo) Create(e *entity.Expense) error {
	if r.err != nil {
		return r.err
	}
	r.items = append(r.items, e)
	return nil
}

func (r *fakeExpenseRepo) GetByID(id string) (*entity.Expense, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, e := range r.items {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

func (r *fakeExpenseRepo) List() ([]*entity.Expense, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.items, nil
}

func (r *fakeExpenseRepo) Update(e *entity.Expense) error {
	if r.err != nil {
		return r.err
	}
	for i, existing := range r.items {
		if existing.ID == e.ID {
			r.items[i] = e
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeExpenseRepo) Delete(id string) error {
	if r.err != nil {
		return r.err
	}
	for i, e := range r.items {
		if e.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeActivityRepo struct {
	items     []*entity.Activity
	createErr error
}

func (r *fakeActivityRepo) Create(a *entity.Activity) error {
	if r.createErr != nil {
		return r.createErr
	}
	// prepend: las más recientes primero, como el ORDER BY del repo real
	r.items = append([]*entity.Activity{a}, r.items...)
	return nil
}

func (r *fakeActivityRepo) ListRecent(limit int) ([]*entity.Activity, error) {
	if limit > len(r.items) {
		limit = len(r.items)
	}
	return r.items[:limit], nil
}

// fakeTxRunner ejecuta el callback sobre los fakes y simula el rollback:
// si el callback falla, restaura el estado previo de los cuatro repos.
type fakeTxRunner struct {
	projects  *fakeProjectRepo
	inventory *fakeInventoryRepo
	expenses  *fakeExpenseRepo
	activity  *fakeActivityRepo
}

func (tx *fakeTxRunner) Run(_ context.Context, fn func(
	projectRepo repository.ProjectRepository,
	inventoryRepo repository.InventoryRepository,
	expenseRepo repository.ExpenseRepository,
	activityRepo repository.ActivityRepository,
) error) error {
	prevProjects := append([]*entity.Project(nil), tx.projects.items...)
	prevInventory := append([]*entity.InventoryItem(nil), tx.inventory.items...)
	prevExpenses := append([]*entity.Expense(nil), tx.expenses.items...)
	prevActivity := append([]*entity.Activity(nil), tx.activity.items...)

	if err := fn(tx.projects, tx.inventory, tx.expenses, tx.activity); err != nil {
		tx.projects.items = prevProjects
		tx.inventory.items = prevInventory
		tx.expenses.items = prevExpenses
		tx.activity.items = prevActivity
		return err
	}
	return nil
}

func newFakeTxRunner() *fakeTxRunner {
	return &fakeTxRunner{
		projects:  &fakeProjectRepo{},
		inventory: &fakeInventoryRepo{},
		expenses:  &fakeExpenseRepo{},
		activity:  &fakeActivityRepo{},
	}
}
