package dto

import "time"

// ActivityResponse entrada del feed de actividad reciente.
type ActivityResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Bold        string    `json:"bold"`
	CreatedAt   time.Time `json:"created_at"`
}
