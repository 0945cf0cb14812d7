package report

import (
	"context"
	"fmt"
	"time"

	"github.com/ndiwanjo/constructora-api/internal/domain"
	"github.com/ndiwanjo/constructora-api/internal/domain/repository"
)

// Export resultado de una exportación: bytes serializados y nombre sugerido
// para la descarga.
type Export struct {
	Filename string
	Data     []byte
}

// ExportUseCase arma las tablas desde los repositorios y delega la
// serialización en los generadores PDF y Excel.
type ExportUseCase struct {
	employeeRepo  repository.EmployeeRepository
	customerRepo  repository.CustomerRepository
	projectRepo   repository.ProjectRepository
	inventoryRepo repository.InventoryRepository
	expenseRepo   repository.ExpenseRepository
	pdfGen        PDFGenerator
	excelGen      ExcelGenerator
	company       string
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(
	employeeRepo repository.EmployeeRepository,
	customerRepo repository.CustomerRepository,
	projectRepo repository.ProjectRepository,
	inventoryRepo repository.InventoryRepository,
	expenseRepo repository.ExpenseRepository,
	pdfGen PDFGenerator,
	excelGen ExcelGenerator,
	company string,
) *ExportUseCase {
	return &ExportUseCase{
		employeeRepo:  employeeRepo,
		customerRepo:  customerRepo,
		projectRepo:   projectRepo,
		inventoryRepo: inventoryRepo,
		expenseRepo:   expenseRepo,
		pdfGen:        pdfGen,
		excelGen:      excelGen,
		company:       company,
	}
}

// BuildTable arma la tabla del módulo indicado con datos frescos del store.
// ErrNotFound si la clave no corresponde a ningún reporte.
func (uc *ExportUseCase) BuildTable(key string) (Table, error) {
	switch key {
	case KeyEmployees:
		list, err := uc.employeeRepo.List()
		if err != nil {
			return Table{}, fmt.Errorf("reporte employees: %w", err)
		}
		return EmployeesTable(list), nil
	case KeyCustomers:
		list, err := uc.customerRepo.List()
		if err != nil {
			return Table{}, fmt.Errorf("reporte customers: %w", err)
		}
		return CustomersTable(list), nil
	case KeyProjects:
		list, err := uc.projectRepo.List()
		if err != nil {
			return Table{}, fmt.Errorf("reporte projects: %w", err)
		}
		return ProjectsTable(list), nil
	case KeyInventory:
		list, err := uc.inventoryRepo.List()
		if err != nil {
			return Table{}, fmt.Errorf("reporte inventory: %w", err)
		}
		return InventoryTable(list), nil
	case KeyExpenses:
		list, err := uc.expenseRepo.List()
		if err != nil {
			return Table{}, fmt.Errorf("reporte expenses: %w", err)
		}
		return ExpensesTable(list), nil
	default:
		return Table{}, domain.ErrNotFound
	}
}

// buildAll arma las cinco tablas en el orden fijo del reporte combinado.
func (uc *ExportUseCase) buildAll() ([]Table, error) {
	tables := make([]Table, 0, len(Keys))
	for _, key := range Keys {
		t, err := uc.BuildTable(key)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, nil
}

// ExportPDF exporta un módulo a PDF.
func (uc *ExportUseCase) ExportPDF(ctx context.Context, key string) (*Export, error) {
	table, err := uc.BuildTable(key)
	if err != nil {
		return nil, err
	}
	data, err := uc.pdfGen.Generate(ctx, uc.header(table.Title), []Table{table})
	if err != nil {
		return nil, err
	}
	return &Export{Filename: table.Sheet + ".pdf", Data: data}, nil
}

// ExportExcel exporta un módulo a una hoja .xlsx.
func (uc *ExportUseCase) ExportExcel(ctx context.Context, key string) (*Export, error) {
	table, err := uc.BuildTable(key)
	if err != nil {
		return nil, err
	}
	data, err := uc.excelGen.Generate(ctx, []Table{table})
	if err != nil {
		return nil, err
	}
	return &Export{Filename: table.Sheet + ".xlsx", Data: data}, nil
}

// ExportFullPDF exporta los cinco reportes como secciones de un solo PDF.
func (uc *ExportUseCase) ExportFullPDF(ctx context.Context) (*Export, error) {
	tables, err := uc.buildAll()
	if err != nil {
		return nil, err
	}
	data, err := uc.pdfGen.Generate(ctx, uc.header("Reporte General del Negocio"), tables)
	if err != nil {
		return nil, err
	}
	return &Export{Filename: "Reporte_General.pdf", Data: data}, nil
}

// ExportFullExcel exporta los cinco reportes como hojas de un solo libro.
func (uc *ExportUseCase) ExportFullExcel(ctx context.Context) (*Export, error) {
	tables, err := uc.buildAll()
	if err != nil {
		return nil, err
	}
	data, err := uc.excelGen.Generate(ctx, tables)
	if err != nil {
		return nil, err
	}
	return &Export{Filename: "Reporte_General.xlsx", Data: data}, nil
}

func (uc *ExportUseCase) header(title string) Header {
	return Header{
		Company:     uc.company,
		Title:       title,
		GeneratedAt: "Generado: " + time.Now().Format("02/01/2006"),
	}
}
