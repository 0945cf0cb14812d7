package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ndiwanjo/constructora-api/internal/application/dto"
	"github.com/ndiwanjo/constructora-api/internal/domain"
	"github.com/ndiwanjo/constructora-api/internal/domain/entity"
	"github.com/ndiwanjo/constructora-api/internal/domain/repository"
)

// ProjectUseCase casos de uso CRUD para obras. El alta registra además una
// Activity dentro de la misma transacción.
type ProjectUseCase struct {
	repo     repository.ProjectRepository
	txRunner TxRunner
}

// NewProjectUseCase construye el caso de uso.
func NewProjectUseCase(repo repository.ProjectRepository, txRunner TxRunner) *ProjectUseCase {
	return &ProjectUseCase{repo: repo, txRunner: txRunner}
}

// Create valida la entrada y persiste obra + entrada de feed atómicamente.
func (uc *ProjectUseCase) Create(ctx context.Context, in dto.ProjectRequest) (*dto.ProjectResponse, error) {
	project, err := uc.buildProject(uuid.New().String(), in)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	project.CreatedAt = now
	project.UpdatedAt = now

	activity := &entity.Activity{
		ID:          uuid.New().String(),
		Description: "Nuevo proyecto creado",
		Bold:        project.Name,
		CreatedAt:   now,
	}
	err = uc.txRunner.Run(ctx, func(
		projectRepo repository.ProjectRepository,
		_ repository.InventoryRepository,
		_ repository.ExpenseRepository,
		activityRepo repository.ActivityRepository,
	) error {
		if err := projectRepo.Create(project); err != nil {
			return err
		}
		return activityRepo.Create(activity)
	})
	if err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

// List devuelve todas las obras, las más recientes primero.
func (uc *ProjectUseCase) List() ([]*dto.ProjectResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProjectResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProjectResponse(p))
	}
	return out, nil
}

// Update aplica los campos a la obra existente. ErrNotFound si el id no existe.
// Actualizar no genera Activity; solo el alta alimenta el feed.
func (uc *ProjectUseCase) Update(id string, in dto.ProjectRequest) (*dto.ProjectResponse, error) {
	updated, err := uc.buildProject(id, in)
	if err != nil {
		return nil, err
	}
	project, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	project.Name = updated.Name
	project.Description = updated.Description
	project.Status = updated.Status
	project.StartDate = updated.StartDate
	project.EndDate = updated.EndDate
	project.UpdatedAt = time.Now()
	if err := uc.repo.Update(project); err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

// Delete elimina la obra. No toca los gastos que la referencian por nombre.
func (uc *ProjectUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// buildProject valida y convierte la entrada a entidad (sin timestamps de alta).
func (uc *ProjectUseCase) buildProject(id string, in dto.ProjectRequest) (*entity.Project, error) {
	if err := requireField(in.Name, "name"); err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = entity.ProjectStatusPending
	}
	if !entity.ValidProjectStatus(status) {
		return nil, fmt.Errorf("%w: status debe ser pending, active o completed", domain.ErrInvalidInput)
	}
	startDate, err := parseDateField(in.StartDate, "start_date")
	if err != nil {
		return nil, err
	}
	endDate, err := parseDateField(in.EndDate, "end_date")
	if err != nil {
		return nil, err
	}
	return &entity.Project{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Status:      status,
		StartDate:   startDate,
		EndDate:     endDate,
	}, nil
}

func toProjectResponse(p *entity.Project) *dto.ProjectResponse {
	return &dto.ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Status:      p.Status,
		Progress:    p.Progress(),
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
