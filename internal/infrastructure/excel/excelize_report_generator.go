// Package excel implementa la exportación de reportes a .xlsx con Excelize:
// una hoja por tabla, cabecera en la fila 1 y una fila por entidad, con las
// celdas ya formateadas por el paquete report (la hoja reproduce exactamente
// lo que muestra la UI).
package excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ndiwanjo/constructora-api/internal/application/report"
)

// ExcelizeReportGenerator implementa report.ExcelGenerator usando Excelize.
type ExcelizeReportGenerator struct{}

// NewExcelizeReportGenerator construye el generador.
func NewExcelizeReportGenerator() *ExcelizeReportGenerator { return &ExcelizeReportGenerator{} }

var _ report.ExcelGenerator = (*ExcelizeReportGenerator)(nil)

// Generate produce el libro con una hoja nombrada por tabla.
func (g *ExcelizeReportGenerator) Generate(_ context.Context, tables []report.Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	for i, t := range tables {
		sheet := t.Sheet
		if i == 0 {
			// Excelize crea "Sheet1" por defecto; se renombra para la primera tabla.
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return nil, fmt.Errorf("excel: renombrar hoja %s: %w", sheet, err)
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return nil, fmt.Errorf("excel: crear hoja %s: %w", sheet, err)
			}
		}
		if err := writeSheet(f, sheet, t); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serializar libro: %w", err)
	}
	return buf.Bytes(), nil
}

// writeSheet escribe cabecera y filas. Cada celda se escribe como texto para
// conservar el formato de presentación (moneda, fechas, guiones).
func writeSheet(f *excelize.File, sheet string, t report.Table) error {
	header := make([]interface{}, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("excel: cabecera de %s: %w", sheet, err)
	}
	for i, cells := range t.Rows {
		rowVals := make([]interface{}, len(cells))
		for j, c := range cells {
			rowVals[j] = c
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("excel: coordenadas fila %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(sheet, cell, &rowVals); err != nil {
			return fmt.Errorf("excel: fila %d de %s: %w", i+2, sheet, err)
		}
	}
	return nil
}
