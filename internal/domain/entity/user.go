package entity

import "time"

// User representa un operador del back office. Se crea en el registro y no se
// actualiza ni elimina desde la aplicación.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	CreatedAt    time.Time
}
