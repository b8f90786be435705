package usecase

import (
	"context"
	"time"

	"empleados-api/internal/domain"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

// EmployeeUseCase реализует бизнес-логику для работы с сотрудниками.
type EmployeeUseCase struct {
	employeeRepo domain.EmployeeRepository
	validate     *validator.Validate
}

// NewEmployeeUseCase создает новый экземпляр EmployeeUseCase.
func NewEmployeeUseCase(employeeRepo domain.EmployeeRepository) domain.EmployeeUseCase {
	return &EmployeeUseCase{
		employeeRepo: employeeRepo,
		validate:     validator.New(),
	}
}

// ListEmployees возвращает всех сотрудников по возрастанию id.
func (uc *EmployeeUseCase) ListEmployees(ctx context.Context) ([]*domain.Employee, error) {
	return uc.employeeRepo.List(ctx)
}

// GetEmployee возвращает сотрудника по id.
func (uc *EmployeeUseCase) GetEmployee(ctx context.Context, id string) (*domain.Employee, error) {
	if id == "" {
		return nil, domain.ErrEmployeeIDRequired
	}

	return uc.employeeRepo.GetByID(ctx, id)
}

// CreateEmployee валидирует вход и создает сотрудника.
// Дефолты применяются здесь, а не колонками стора: fecha_ingreso — текущее
// время, activo — true.
func (uc *EmployeeUseCase) CreateEmployee(ctx context.Context, input domain.NewEmployee) (*domain.Employee, error) {
	// Отклоняем до любого обращения к стору
	if err := uc.validate.Struct(input); err != nil {
		return nil, domain.ErrEmployeeInvalid
	}

	record := domain.EmployeeRecord{
		Nombre:       input.Nombre,
		Apellido:     input.Apellido,
		Puesto:       input.Puesto,
		FechaIngreso: lo.FromPtrOr(input.FechaIngreso, time.Now()),
		Activo:       lo.FromPtrOr(input.Activo, true),
	}

	return uc.employeeRepo.Create(ctx, record)
}

// UpdateEmployee обновляет заданные поля сотрудника.
// Пустое тело — no-op: возвращаем текущую строку без PATCH-запроса.
func (uc *EmployeeUseCase) UpdateEmployee(ctx context.Context, id string, update domain.EmployeeUpdate) (*domain.Employee, error) {
	if id == "" {
		return nil, domain.ErrEmployeeIDRequired
	}

	if len(update.Fields()) == 0 {
		return uc.employeeRepo.GetByID(ctx, id)
	}

	return uc.employeeRepo.Update(ctx, id, update)
}

// DeleteEmployee удаляет сотрудника и возвращает удаленную строку.
func (uc *EmployeeUseCase) DeleteEmployee(ctx context.Context, id string) (*domain.Employee, error) {
	if id == "" {
		return nil, domain.ErrEmployeeIDRequired
	}

	return uc.employeeRepo.Delete(ctx, id)
}
