// Package report transforma las colecciones del back office en tablas de
// exportación: esquema fijo de columnas, una fila por entidad y celdas ya
// formateadas para presentación (moneda con separador de miles, fechas
// locales, guion para valores ausentes). La misma tabla alimenta el PDF y la
// hoja de cálculo, de modo que ambos artefactos reproducen celda a celda lo
// que muestra la UI.
package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ndiwanjo/constructora-api/internal/domain/entity"
)

// Claves de los cinco reportes, en el orden fijo del reporte combinado.
const (
	KeyEmployees = "employees"
	KeyCustomers = "customers"
	KeyProjects  = "projects"
	KeyInventory = "inventory"
	KeyExpenses  = "expenses"
)

// Keys orden fijo de iteración para el reporte combinado.
var Keys = []string{KeyEmployees, KeyCustomers, KeyProjects, KeyInventory, KeyExpenses}

// Table una tabla de reporte lista para serializar.
type Table struct {
	Key     string
	Title   string
	Sheet   string // nombre corto para la pestaña de Excel
	Columns []string
	Rows    [][]string
}

// EmployeesTable construye el reporte de trabajadores.
func EmployeesTable(employees []*entity.Employee) Table {
	rows := make([][]string, 0, len(employees))
	for _, e := range employees {
		rows = append(rows, []string{
			e.Name,
			dash(e.Email),
			dash(e.Phone),
			dash(e.Role),
			dash(e.Department),
			Money(e.Salary),
		})
	}
	return Table{
		Key:     KeyEmployees,
		Title:   "Reporte de Trabajadores",
		Sheet:   "Trabajadores",
		Columns: []string{"Nombre", "Email", "Teléfono", "Cargo", "Departamento", "Salario"},
		Rows:    rows,
	}
}

// CustomersTable construye el reporte de clientes.
func CustomersTable(customers []*entity.Customer) Table {
	rows := make([][]string, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, []string{
			c.Name,
			dash(c.Email),
			dash(c.Phone),
			dash(c.Address),
		})
	}
	return Table{
		Key:     KeyCustomers,
		Title:   "Reporte de Clientes",
		Sheet:   "Clientes",
		Columns: []string{"Nombre", "Email", "Teléfono", "Dirección"},
		Rows:    rows,
	}
}

// ProjectsTable construye el reporte de obras.
func ProjectsTable(projects []*entity.Project) Table {
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{
			p.Name,
			dash(p.Description),
			p.Status,
			Date(p.StartDate),
			Date(p.EndDate),
		})
	}
	return Table{
		Key:     KeyProjects,
		Title:   "Reporte de Proyectos",
		Sheet:   "Proyectos",
		Columns: []string{"Nombre", "Descripción", "Estado", "Fecha Inicio", "Fecha Fin"},
		Rows:    rows,
	}
}

// InventoryTable construye el reporte de bodega. La última columna es el
// valor derivado quantity × price, calculado al exportar.
func InventoryTable(items []*entity.InventoryItem) Table {
	rows := make([][]string, 0, len(items))
	for _, i := range items {
		rows = append(rows, []string{
			i.Name,
			decimal.NewFromInt(int64(i.Quantity)).String(),
			dash(i.Unit),
			Money(i.Price),
			Money(i.TotalValue()),
		})
	}
	return Table{
		Key:     KeyInventory,
		Title:   "Reporte de Inventario",
		Sheet:   "Inventario",
		Columns: []string{"Nombre", "Cantidad", "Unidad", "Precio", "Valor Total"},
		Rows:    rows,
	}
}

// ExpensesTable construye el reporte de gastos.
func ExpensesTable(expenses []*entity.Expense) Table {
	rows := make([][]string, 0, len(expenses))
	for _, e := range expenses {
		rows = append(rows, []string{
			e.Title,
			Money(e.Amount),
			dash(e.Category),
			dash(e.ProjectName),
			Date(e.CreatedAt),
		})
	}
	return Table{
		Key:     KeyExpenses,
		Title:   "Reporte de Gastos",
		Sheet:   "Gastos",
		Columns: []string{"Título", "Monto", "Categoría", "Proyecto", "Fecha"},
		Rows:    rows,
	}
}

// ── formato de celdas ─────────────────────────────────────────────────────────

// Money formatea un monto como "$1.500,50": separador de miles con punto y
// dos decimales con coma.
func Money(d decimal.Decimal) string {
	fixed := d.StringFixed(2)
	neg := ""
	if fixed[0] == '-' {
		neg = "-"
		fixed = fixed[1:]
	}
	intPart := fixed[:len(fixed)-3]
	fracPart := fixed[len(fixed)-2:]
	return neg + "$" + groupThousands(intPart) + "," + fracPart
}

// groupThousands inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}

// Date formatea una fecha como "02/01/2006". Fecha cero → guion.
func Date(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return t.Format("02/01/2006")
}

func dash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
