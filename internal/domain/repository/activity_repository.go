package repository

import "github.com/ndiwanjo/constructora-api/internal/domain/entity"

// ActivityRepository define el puerto de persistencia para Activity.
// El feed es write-once: solo Create y lectura de los más recientes.
type ActivityRepository interface {
	Create(activity *entity.Activity) error
	ListRecent(limit int) ([]*entity.Activity, error)
}
