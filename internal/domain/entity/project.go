package entity

import "time"

// Estados válidos para Project.
const (
	ProjectStatusPending   = "pending"
	ProjectStatusActive    = "active"
	ProjectStatusCompleted = "completed"
)

// Project representa una obra de la constructora.
type Project struct {
	ID          string
	Name        string
	Description string
	Status      string // pending, active, completed
	StartDate   time.Time
	EndDate     time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ValidProjectStatus indica si s es uno de los estados conocidos.
func ValidProjectStatus(s string) bool {
	return s == ProjectStatusPending || s == ProjectStatusActive || s == ProjectStatusCompleted
}

// Progress devuelve el avance estimado según el estado (heurística de presentación,
// nunca se persiste): completed→100, active→65, resto→20.
func (p *Project) Progress() int {
	switch p.Status {
	case ProjectStatusCompleted:
		return 100
	case ProjectStatusActive:
		return 65
	default:
		return 20
	}
}
