package repository

import "github.com/ndiwanjo/constructora-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// User no se actualiza ni elimina desde la aplicación.
type UserRepository interface {
	Create(user *entity.User) error
	FindByEmail(email string) (*entity.User, error)
}
