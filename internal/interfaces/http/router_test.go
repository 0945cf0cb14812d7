package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndiwanjo/constructora-api/internal/application/analytics"
	"github.com/ndiwanjo/constructora-api/internal/application/auth"
	"github.com/ndiwanjo/constructora-api/internal/application/report"
	"github.com/ndiwanjo/constructora-api/internal/application/usecase"
	"github.com/ndiwanjo/constructora-api/internal/domain"
	"github.com/ndiwanjo/constructora-api/internal/domain/entity"
	"github.com/ndiwanjo/constructora-api/internal/domain/repository"
	infraexcel "github.com/ndiwanjo/constructora-api/internal/infrastructure/excel"
	infrapdf "github.com/ndiwanjo/constructora-api/internal/infrastructure/pdf"
	apphttp "github.com/ndiwanjo/constructora-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repos en memoria: el contrato es el mismo que el de los repos de PostgreSQL
// ──────────────────────────────────────────────────────────────────────────────

type memUsers struct{ users []*entity.User }

func (r *memUsers) Create(u *entity.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.users = append(r.users, u)
	return nil
}

func (r *memUsers) FindByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

type memEmployees struct{ items []*entity.Employee }

func (r *memEmployees) Create(e *entity.Employee) error { r.items = append(r.items, e); return nil }
func (r *memEmployees) GetByID(id string) (*entity.Employee, error) {
	for _, e := range r.items {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}
func (r *memEmployees) List() ([]*entity.Employee, error) { return r.items, nil }
func (r *memEmployees) Update(e *entity.Employee) error {
	for i, existing := range r.items {
		if existing.ID == e.ID {
			r.items[i] = e
			return nil
		}
	}
	return domain.ErrNotFound
}
func (r *memEmployees) Delete(id string) error {
	for i, e := range r.items {
		if e.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type memCustomers struct{ items []*entity.Customer }

func (r *memCustomers) Create(c *entity.Customer) error { r.items = append(r.items, c); return nil }
func (r *memCustomers) GetByID(id string) (*entity.Customer, error) {
	for _, c := range r.items {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}
func (r *memCustomers) List() ([]*entity.Customer, error) { return r.items, nil }
func (r *memCustomers) Update(c *entity.Customer) error {
	for i, existing := range r.items {
		if existing.ID == c.ID {
			r.items[i] = c
			return nil
		}
	}
	return domain.ErrNotFound
}
func (r *memCustomers) Delete(id string) error {
	for i, c := range r.items {
		if c.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type memProjects struct{ items []*entity.Project }

func (r *memProjects) Create(p *entity.Project) error { r.items = append(r.items, p); return nil }
func (r *memProjects) GetByID(id string) (*entity.Project, error) {
	for _, p := range r.items {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}
func (r *memProjects) List() ([]*entity.Project, error) { return r.items, nil }
func (r *memProjects) Update(p *entity.Project) error {
	for i, existing := range r.items {
		if existing.ID == p.ID {
			r.items[i] = p
			return nil
		}
	}
	return domain.ErrNotFound
}
func (r *memProjects) Delete(id string) error {
	for i, p := range r.items {
		if p.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type memInventory struct{ items []*entity.InventoryItem }

func (r *memInventory) Create(i *entity.InventoryItem) error { r.items = append(r.items, i); return nil }
func (r *memInventory) GetByID(id string) (*entity.InventoryItem, error) {
	for _, item := range r.items {
		if item.ID == id {
			return item, nil
		}
	}
	return nil, nil
}
func (r *memInventory) List() ([]*entity.InventoryItem, error) { return r.items, nil }
func (r *memInventory) Update(i *entity.InventoryItem) error {
	for idx, existing := range r.items {
		if existing.ID == i.ID {
			r.items[idx] = i
			return nil
		}
	}
	return domain.ErrNotFound
}
func (r *memInventory) Delete(id string) error {
	for i, item := range r.items {
		if item.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type memExpenses struct{ items []*entity.Expense }

func (r *memExpenses) Create(e *entity.Expense) error { r.items = append(r.items, e); return nil }
func (r *memExpenses) GetByID(id string) (*entity.Expense, error) {
	for _, e := range r.items {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}
func (r *memExpenses) List() ([]*entity.Expense, error) { return r.items, nil }
func (r *memExpenses) Update(e *entity.Expense) error {
	for i, existing := range r.items {
		if existing.ID == e.ID {
			r.items[i] = e
			return nil
		}
	}
	return domain.ErrNotFound
}
func (r *memExpenses) Delete(id string) error {
	for i, e := range r.items {
		if e.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type memActivities struct{ items []*entity.Activity }

func (r *memActivities) Create(a *entity.Activity) error {
	r.items = append([]*entity.Activity{a}, r.items...)
	return nil
}

func (r *memActivities) ListRecent(limit int) ([]*entity.Activity, error) {
	if limit > len(r.items) {
		limit = len(r.items)
	}
	return r.items[:limit], nil
}

// memTxRunner ejecuta el callback directamente sobre los repos en memoria.
type memTxRunner struct {
	projects  *memProjects
	inventory *memInventory
	expenses  *memExpenses
	activity  *memActivities
}

func (tx *memTxRunner) Run(_ context.Context, fn func(
	repository.ProjectRepository,
	repository.InventoryRepository,
	repository.ExpenseRepository,
	repository.ActivityRepository,
) error) error {
	return fn(tx.projects, tx.inventory, tx.expenses, tx.activity)
}

// ──────────────────────────────────────────────────────────────────────────────
// App completa sobre repos en memoria
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	app        *fiber.App
	users      *memUsers
	activities *memActivities
}

func buildAPIApp(t *testing.T) *testEnv {
	t.Helper()

	users := &memUsers{}
	employees := &memEmployees{}
	customers := &memCustomers{}
	projects := &memProjects{}
	inventory := &memInventory{}
	expenses := &memExpenses{}
	activities := &memActivities{}
	tx := &memTxRunner{projects: projects, inventory: inventory, expenses: expenses, activity: activities}

	authUC := auth.NewAuthUseCase(users, auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: testExpMin,
		Issuer:     testIssuer,
	})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:      authUC,
		EmployeeUC:  usecase.NewEmployeeUseCase(employees),
		CustomerUC:  usecase.NewCustomerUseCase(customers),
		ProjectUC:   usecase.NewProjectUseCase(projects, tx),
		InventoryUC: usecase.NewInventoryUseCase(inventory, tx),
		ExpenseUC:   usecase.NewExpenseUseCase(expenses, tx),
		ActivityUC:  usecase.NewActivityUseCase(activities),
		DashboardUC: analytics.NewDashboardUseCase(employees, customers, projects, inventory, expenses, activities, nil),
		ReportUC: report.NewExportUseCase(
			employees, customers, projects, inventory, expenses,
			infrapdf.NewMarotoReportGenerator(),
			infraexcel.NewExcelizeReportGenerator(),
			"Ndiwanjo Construction",
		),
		JWTSecret: testJWTSecret,
	})
	return &testEnv{app: app, users: users, activities: activities}
}

func jsonRequest(t *testing.T, method, path string, body interface{}, token string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

// registerAndLogin crea un usuario y devuelve su token.
func registerAndLogin(t *testing.T, env *testEnv) string {
	t.Helper()
	resp, err := env.app.Test(jsonRequest(t, http.MethodPost, "/api/auth/register", fiber.Map{
		"name":     "Laura",
		"email":    "laura@constructora.com",
		"password": "segura-12345",
	}, ""), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp, err = env.app.Test(jsonRequest(t, http.MethodPost, "/api/auth/login", fiber.Map{
		"email":    "laura@constructora.com",
		"password": "segura-12345",
	}, ""), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Token string `json:"token"`
		Name  string `json:"name"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotEmpty(t, out.Token)
	return out.Token
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_PasswordCorta_Retorna400(t *testing.T) {
	env := buildAPIApp(t)

	resp, err := env.app.Test(jsonRequest(t, http.MethodPost, "/api/auth/register", fiber.Map{
		"email":    "x@y.com",
		"password": "corta",
	}, ""), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRegister_EmailDuplicado_Retorna409(t *testing.T) {
	env := buildAPIApp(t)
	registerAndLogin(t, env)

	resp, err := env.app.Test(jsonRequest(t, http.MethodPost, "/api/auth/register", fiber.Map{
		"email":    "laura@constructora.com",
		"password": "otra-password",
	}, ""), -1)
	require.NoError(t, err)

	var body struct {
		Code string `json:"code"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "EMAIL_EXISTS", body.Code)
}

func TestLogin_PasswordIncorrecta_Retorna401(t *testing.T) {
	env := buildAPIApp(t)
	registerAndLogin(t, env)

	resp, err := env.app.Test(jsonRequest(t, http.MethodPost, "/api/auth/login", fiber.Map{
		"email":    "laura@constructora.com",
		"password": "incorrecta",
	}, ""), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Protección de rutas
// ──────────────────────────────────────────────────────────────────────────────

func TestRutasProtegidas_SinToken_Retorna401(t *testing.T) {
	env := buildAPIApp(t)

	paths := []string{
		"/api/employees/",
		"/api/customers/",
		"/api/projects/",
		"/api/inventory/",
		"/api/expenses/",
		"/api/activities",
		"/api/dashboard/summary",
		"/api/reports/full/pdf",
	}
	for _, path := range paths {
		resp, err := env.app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "GET %s sin token debe ser 401", path)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// CRUD empleados (el resto de recursos comparte los mismos handlers genéricos)
// ──────────────────────────────────────────────────────────────────────────────

func TestEmployees_CicloCompleto(t *testing.T) {
	env := buildAPIApp(t)
	token := registerAndLogin(t, env)

	// Create
	resp, err := env.app.Test(jsonRequest(t, http.MethodPost, "/api/employees/", fiber.Map{
		"name":   "Pedro Martínez",
		"role":   "Maestro de obra",
		"salary": "2500000",
	}, token), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	decodeBody(t, resp, &created)
	require.NotEmpty(t, created.ID)

	// List
	resp, err = env.app.Test(jsonRequest(t, http.MethodGet, "/api/employees/", nil, token), -1)
	require.NoError(t, err)
	var list []map[string]interface{}
	decodeBody(t, resp, &list)
	require.Len(t, list, 1)

	// Update
	resp, err = env.app.Test(jsonRequest(t, http.MethodPut, "/api/employees/"+created.ID, fiber.Map{
		"name":   "Pedro Martínez",
		"role":   "Residente",
		"salary": "3000000",
	}, token), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Delete
	resp, err = env.app.Test(jsonRequest(t, http.MethodDelete, "/api/employees/"+created.ID, nil, token), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Delete de nuevo → 404
	resp, err = env.app.Test(jsonRequest(t, http.MethodDelete, "/api/employees/"+created.ID, nil, token), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestEmployees_SalaryInvalido_Retorna400(t *testing.T) {
	env := buildAPIApp(t)
	token := registerAndLogin(t, env)

	resp, err := env.app.Test(jsonRequest(t, http.MethodPost, "/api/employees/", fiber.Map{
		"name":   "Pedro",
		"salary": "dos millones",
	}, token), -1)
	require.NoError(t, err)

	var body struct {
		Code string `json:"code"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Feed de actividad y dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestProjects_CreateAlimentaElFeed(t *testing.T) {
	env := buildAPIApp(t)
	token := registerAndLogin(t, env)

	resp, err := env.app.Test(jsonRequest(t, http.MethodPost, "/api/projects/", fiber.Map{
		"name":   "Edificio Mirador",
		"status": "active",
	}, token), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp, err = env.app.Test(jsonRequest(t, http.MethodGet, "/api/activities", nil, token), -1)
	require.NoError(t, err)
	var feed []struct {
		Description string `json:"description"`
		Bold        string `json:"bold"`
	}
	decodeBody(t, resp, &feed)
	require.Len(t, feed, 1)
	assert.Equal(t, "Nuevo proyecto creado", feed[0].Description)
	assert.Equal(t, "Edificio Mirador", feed[0].Bold)
}

func TestDashboard_YearInvalido_Retorna400(t *testing.T) {
	env := buildAPIApp(t)
	token := registerAndLogin(t, env)

	resp, err := env.app.Test(jsonRequest(t, http.MethodGet, "/api/dashboard/summary?year=dosmil", nil, token), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDashboard_Summary(t *testing.T) {
	env := buildAPIApp(t)
	token := registerAndLogin(t, env)

	resp, err := env.app.Test(jsonRequest(t, http.MethodPost, "/api/expenses/", fiber.Map{
		"title":    "Compra de cemento",
		"amount":   "500000",
		"category": "pending",
	}, token), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp, err = env.app.Test(jsonRequest(t, http.MethodGet, "/api/dashboard/summary?year=2026", nil, token), -1)
	require.NoError(t, err)

	var summary struct {
		Year            int    `json:"year"`
		TotalExpenses   string `json:"total_expenses"`
		PendingPayments string `json:"pending_payments"`
		MonthlyExpenses []struct {
			Month string `json:"month"`
		} `json:"monthly_expenses"`
		TaskStats []struct {
			Status string `json:"status"`
		} `json:"task_stats"`
	}
	decodeBody(t, resp, &summary)

	assert.Equal(t, 2026, summary.Year)
	assert.Equal(t, "500000", summary.TotalExpenses)
	assert.Equal(t, "500000", summary.PendingPayments)
	require.Len(t, summary.MonthlyExpenses, 12)
	assert.Equal(t, "Ene", summary.MonthlyExpenses[0].Month)
	require.Len(t, summary.TaskStats, 3)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reportes
// ──────────────────────────────────────────────────────────────────────────────

func TestReports_ModuloDesconocido_Retorna404(t *testing.T) {
	env := buildAPIApp(t)
	token := registerAndLogin(t, env)

	resp, err := env.app.Test(jsonRequest(t, http.MethodGet, "/api/reports/payroll/pdf", nil, token), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestReports_PDFDeModulo(t *testing.T) {
	env := buildAPIApp(t)
	token := registerAndLogin(t, env)

	resp, err := env.app.Test(jsonRequest(t, http.MethodGet, "/api/reports/employees/pdf", nil, token), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), `attachment; filename="Trabajadores.pdf"`)
}

func TestReports_ExcelGeneral(t *testing.T) {
	env := buildAPIApp(t)
	token := registerAndLogin(t, env)

	resp, err := env.app.Test(jsonRequest(t, http.MethodGet, "/api/reports/full/excel", nil, token), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "Reporte_General.xlsx")
}
