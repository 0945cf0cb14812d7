package dto

import "time"

// ProjectRequest entrada para crear o actualizar una obra.
// Las fechas llegan como "2006-01-02"; el use case las valida y convierte.
type ProjectRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Status      string `json:"status" validate:"oneof=pending active completed"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

// ProjectResponse salida de una obra. Progress es la heurística de avance
// por estado, calculada al leer.
type ProjectResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Progress    int       `json:"progress"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
