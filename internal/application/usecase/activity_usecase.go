package usecase

import (
	"github.com/ndiwanjo/constructora-api/internal/application/dto"
	"github.com/ndiwanjo/constructora-api/internal/domain/repository"
)

// recentActivities tamaño del feed de actividad reciente.
const recentActivities = 10

// ActivityUseCase lectura del feed de actividad (append-only, sin escritura
// directa: las entradas nacen como efecto de otros use cases).
type ActivityUseCase struct {
	repo repository.ActivityRepository
}

// NewActivityUseCase construye el caso de uso.
func NewActivityUseCase(repo repository.ActivityRepository) *ActivityUseCase {
	return &ActivityUseCase{repo: repo}
}

// ListRecent devuelve las 10 entradas más recientes del feed.
func (uc *ActivityUseCase) ListRecent() ([]*dto.ActivityResponse, error) {
	list, err := uc.repo.ListRecent(recentActivities)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ActivityResponse, 0, len(list))
	for _, a := range list {
		out = append(out, &dto.ActivityResponse{
			ID:          a.ID,
			Description: a.Description,
			Bold:        a.Bold,
			CreatedAt:   a.CreatedAt,
		})
	}
	return out, nil
}
