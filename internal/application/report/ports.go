package report

import "context"

// Header encabezado común de los artefactos exportados.
type Header struct {
	Company     string
	Title       string
	GeneratedAt string // fecha de generación ya formateada
}

// PDFGenerator serializa tablas a un documento PDF paginado.
type PDFGenerator interface {
	// Generate produce un documento con encabezado y una o varias tablas en
	// secciones consecutivas; el salto de página lo gestiona el generador.
	Generate(ctx context.Context, header Header, tables []Table) ([]byte, error)
}

// ExcelGenerator serializa tablas a un libro .xlsx, una hoja por tabla.
type ExcelGenerator interface {
	Generate(ctx context.Context, tables []Table) ([]byte, error)
}
