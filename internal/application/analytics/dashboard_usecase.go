// Package analytics contiene el agregador del dashboard del back office:
// conteos, totales financieros, histograma mensual de gastos, distribución de
// obras por estado, feed de actividad y bodega destacada. Todo se recalcula
// en cada invocación sobre las colecciones completas, sin caché.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/ndiwanjo/constructora-api/internal/application/dto"
	"github.com/ndiwanjo/constructora-api/internal/domain/entity"
	"github.com/ndiwanjo/constructora-api/internal/domain/repository"
	"github.com/ndiwanjo/constructora-api/pkg/logger"
)

const dashboardTopInventory = 5 // artículos en el widget de bodega

// DashboardUseCase agrega las seis fuentes del dashboard. Las consultas se
// lanzan en paralelo y ninguna asume orden de llegada; una fuente caída
// degrada a colección vacía en lugar de abortar el resumen completo.
type DashboardUseCase struct {
	employeeRepo  repository.EmployeeRepository
	customerRepo  repository.CustomerRepository
	projectRepo   repository.ProjectRepository
	inventoryRepo repository.InventoryRepository
	expenseRepo   repository.ExpenseRepository
	activityRepo  repository.ActivityRepository
	log           *logger.Logger
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	employeeRepo repository.EmployeeRepository,
	customerRepo repository.CustomerRepository,
	projectRepo repository.ProjectRepository,
	inventoryRepo repository.InventoryRepository,
	expenseRepo repository.ExpenseRepository,
	activityRepo repository.ActivityRepository,
	log *logger.Logger,
) *DashboardUseCase {
	return &DashboardUseCase{
		employeeRepo:  employeeRepo,
		customerRepo:  customerRepo,
		projectRepo:   projectRepo,
		inventoryRepo: inventoryRepo,
		expenseRepo:   expenseRepo,
		activityRepo:  activityRepo,
		log:           log,
	}
}

// GetSummary construye el DashboardSummaryDTO. year selecciona el año del
// histograma mensual de gastos; cero equivale al año en curso.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, year int) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()
	if year == 0 {
		year = now.Year()
	}

	var (
		employees []*entity.Employee
		customers []*entity.Customer
		projects  []*entity.Project
		inventory []*entity.InventoryItem
		expenses  []*entity.Expense
		feed      []*entity.Activity
	)

	// Seis consultas independientes en paralelo. Los errores se degradan a
	// colección vacía: el resto del resumen sigue siendo correcto.
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if employees, err = uc.employeeRepo.List(); err != nil {
			uc.warn("employees", err)
			employees = nil
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if customers, err = uc.customerRepo.List(); err != nil {
			uc.warn("customers", err)
			customers = nil
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if projects, err = uc.projectRepo.List(); err != nil {
			uc.warn("projects", err)
			projects = nil
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if inventory, err = uc.inventoryRepo.List(); err != nil {
			uc.warn("inventory", err)
			inventory = nil
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if expenses, err = uc.expenseRepo.List(); err != nil {
			uc.warn("expenses", err)
			expenses = nil
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if feed, err = uc.activityRepo.ListRecent(10); err != nil {
			uc.warn("activities", err)
			feed = nil
		}
		return nil
	})
	_ = g.Wait()

	return &dto.DashboardSummaryDTO{
		Counts: dto.DashboardCounts{
			Employees: len(employees),
			Customers: len(customers),
			Projects:  len(projects),
			Inventory: len(inventory),
		},
		TotalExpenses:   TotalExpenses(expenses),
		PendingPayments: PendingPayments(expenses),
		Year:            year,
		MonthlyExpenses: MonthlyExpenses(expenses, year),
		TaskStats:       TaskStats(projects),
		Activities:      activityFeed(feed, now),
		TopInventory:    topInventory(inventory),
	}, nil
}

func (uc *DashboardUseCase) warn(source string, err error) {
	if uc.log != nil {
		uc.log.Warn().Err(err).Str("source", source).Msg("dashboard: fuente caída, se usa colección vacía")
	}
}

// TotalExpenses suma el monto de todos los gastos. Colección vacía → cero.
func TotalExpenses(expenses []*entity.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// PendingPayments suma los gastos con categoría "pending".
func PendingPayments(expenses []*entity.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		if e.Category == entity.ExpenseCategoryPending {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// MonthlyExpenses agrupa los gastos del año indicado en doce buckets ene-dic.
// El filtro por año es explícito: gastos de otros años no colisionan en el
// mismo mes.
func MonthlyExpenses(expenses []*entity.Expense, year int) []dto.MonthlyExpenseDTO {
	months := [12]string{"Ene", "Feb", "Mar", "Abr", "May", "Jun", "Jul", "Ago", "Sep", "Oct", "Nov", "Dic"}
	totals := [12]decimal.Decimal{}
	for i := range totals {
		totals[i] = decimal.Zero
	}
	for _, e := range expenses {
		if e.CreatedAt.Year() != year {
			continue
		}
		totals[e.CreatedAt.Month()-1] = totals[e.CreatedAt.Month()-1].Add(e.Amount)
	}
	out := make([]dto.MonthlyExpenseDTO, 12)
	for i := range out {
		out[i] = dto.MonthlyExpenseDTO{Month: months[i], Total: totals[i]}
	}
	return out
}

// TaskStats cuenta obras por estado y calcula la proporción de cada uno.
// Siempre devuelve los tres estados, aun con conteo cero.
func TaskStats(projects []*entity.Project) []dto.TaskStatDTO {
	statuses := []string{entity.ProjectStatusPending, entity.ProjectStatusActive, entity.ProjectStatusCompleted}
	counts := map[string]int{}
	for _, p := range projects {
		counts[p.Status]++
	}
	out := make([]dto.TaskStatDTO, 0, len(statuses))
	for _, s := range statuses {
		pct := 0
		if len(projects) > 0 {
			pct = counts[s] * 100 / len(projects)
		}
		out = append(out, dto.TaskStatDTO{
			Status:     s,
			Count:      counts[s],
			Percentage: pct,
			Progress:   (&entity.Project{Status: s}).Progress(),
		})
	}
	return out
}

func activityFeed(feed []*entity.Activity, now time.Time) []dto.DashboardActivityDTO {
	out := make([]dto.DashboardActivityDTO, 0, len(feed))
	for _, a := range feed {
		out = append(out, dto.DashboardActivityDTO{
			Description: a.Description,
			Bold:        a.Bold,
			TimeAgo:     TimeAgo(now, a.CreatedAt),
		})
	}
	return out
}

// TimeAgo renderiza el tiempo relativo del feed: justo ahora, minutos,
// horas o días.
func TimeAgo(now, t time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "justo ahora"
	case d < time.Hour:
		return plural(int(d.Minutes()), "minuto", "minutos")
	case d < 24*time.Hour:
		return plural(int(d.Hours()), "hora", "horas")
	default:
		return plural(int(d.Hours()/24), "día", "días")
	}
}

func plural(n int, singular, pl string) string {
	if n == 1 {
		return fmt.Sprintf("hace 1 %s", singular)
	}
	return fmt.Sprintf("hace %d %s", n, pl)
}

// topInventory toma los artículos más recientes (la lista ya viene ordenada
// por recencia) y marca los de stock bajo.
func topInventory(inventory []*entity.InventoryItem) []dto.TopInventoryItemDTO {
	n := len(inventory)
	if n > dashboardTopInventory {
		n = dashboardTopInventory
	}
	out := make([]dto.TopInventoryItemDTO, 0, n)
	for _, i := range inventory[:n] {
		out = append(out, dto.TopInventoryItemDTO{
			Name:     i.Name,
			Quantity: i.Quantity,
			Unit:     i.Unit,
			LowStock: i.LowStock(),
		})
	}
	return out
}
