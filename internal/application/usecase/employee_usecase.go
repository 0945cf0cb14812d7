package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/ndiwanjo/constructora-api/internal/application/dto"
	"github.com/ndiwanjo/constructora-api/internal/domain"
	"github.com/ndiwanjo/constructora-api/internal/domain/entity"
	"github.com/ndiwanjo/constructora-api/internal/domain/repository"
)

// EmployeeUseCase casos de uso CRUD para trabajadores.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

// Create valida la entrada, convierte salary y persiste el trabajador.
func (uc *EmployeeUseCase) Create(in dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	if err := requireField(in.Name, "name"); err != nil {
		return nil, err
	}
	salary, err := parseDecimalField(in.Salary, "salary")
	if err != nil {
		return nil, err
	}
	now := time.Now()
	employee := &entity.Employee{
		ID:         uuid.New().String(),
		Name:       in.Name,
		Email:      in.Email,
		Phone:      in.Phone,
		Role:       in.Role,
		Department: in.Department,
		Salary:     salary,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// List devuelve todos los trabajadores.
func (uc *EmployeeUseCase) List() ([]*dto.EmployeeResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toEmployeeResponse(e))
	}
	return out, nil
}

// Update aplica los campos al trabajador existente. ErrNotFound si el id no existe.
func (uc *EmployeeUseCase) Update(id string, in dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	if err := requireField(in.Name, "name"); err != nil {
		return nil, err
	}
	salary, err := parseDecimalField(in.Salary, "salary")
	if err != nil {
		return nil, err
	}
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	employee.Name = in.Name
	employee.Email = in.Email
	employee.Phone = in.Phone
	employee.Role = in.Role
	employee.Department = in.Department
	employee.Salary = salary
	employee.UpdatedAt = time.Now()
	if err := uc.repo.Update(employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// Delete elimina el trabajador. ErrNotFound si el id no existe.
func (uc *EmployeeUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:         e.ID,
		Name:       e.Name,
		Email:      e.Email,
		Phone:      e.Phone,
		Role:       e.Role,
		Department: e.Department,
		Salary:     e.Salary,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}
