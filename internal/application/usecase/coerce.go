package usecase

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ndiwanjo/constructora-api/internal/domain"
)

// Los formularios envían los campos numéricos como texto. A diferencia del
// comportamiento histórico (parseFloat silencioso que almacenaba NaN), aquí
// un valor no numérico rechaza la petición con ErrInvalidInput.

// parseDecimalField convierte texto a decimal. Vacío equivale a cero.
func parseDecimalField(value, field string) (decimal.Decimal, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s debe ser numérico", domain.ErrInvalidInput, field)
	}
	return d, nil
}

// parseRequiredDecimalField como parseDecimalField pero rechaza el vacío.
func parseRequiredDecimalField(value, field string) (decimal.Decimal, error) {
	if strings.TrimSpace(value) == "" {
		return decimal.Zero, fmt.Errorf("%w: %s es requerido", domain.ErrInvalidInput, field)
	}
	return parseDecimalField(value, field)
}

// parseIntField convierte texto a entero. Vacío equivale a cero.
func parseIntField(value, field string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s debe ser un entero", domain.ErrInvalidInput, field)
	}
	return n, nil
}

// parseDateField convierte "2006-01-02" a time.Time. Vacío equivale a fecha cero.
func parseDateField(value, field string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s debe tener formato AAAA-MM-DD", domain.ErrInvalidInput, field)
	}
	return t, nil
}

// requireField valida que un campo de texto obligatorio no esté en blanco.
func requireField(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s es requerido", domain.ErrInvalidInput, field)
	}
	return nil
}
