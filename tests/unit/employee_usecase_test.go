package usecase_test

import (
	"context"
	"testing"
	"time"

	"empleados-api/internal/domain"
	"empleados-api/internal/usecase"
	"empleados-api/tests/mocks"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestEmployeeUseCase_ListEmployees_Success(t *testing.T) {
	ctx := context.Background()
	employeeRepo := &mocks.EmployeeRepository{}
	uc := usecase.NewEmployeeUseCase(employeeRepo)

	employees := []*domain.Employee{
		{ID: 1, Nombre: "Ana", Apellido: "Ruiz", Puesto: "Dev", Activo: true},
		{ID: 2, Nombre: "Luis", Apellido: "Soto", Puesto: "QA", Activo: true},
	}

	employeeRepo.On("List", ctx).Return(employees, nil)

	result, err := uc.ListEmployees(ctx)

	assert.NoError(t, err)
	assert.Equal(t, employees, result)
	assert.Len(t, result, 2)
}

func TestEmployeeUseCase_GetEmployee_Success(t *testing.T) {
	ctx := context.Background()
	employeeRepo := &mocks.EmployeeRepository{}
	uc := usecase.NewEmployeeUseCase(employeeRepo)

	employee := &domain.Employee{ID: 7, Nombre: "Ana", Apellido: "Ruiz", Puesto: "Dev", Activo: true}

	employeeRepo.On("GetByID", ctx, "7").Return(employee, nil)

	result, err := uc.GetEmployee(ctx, "7")

	assert.NoError(t, err)
	assert.Equal(t, employee, result)
}

func TestEmployeeUseCase_GetEmployee_EmptyID(t *testing.T) {
	ctx := context.Background()
	employeeRepo := &mocks.EmployeeRepository{}
	uc := usecase.NewEmployeeUseCase(employeeRepo)

	result, err := uc.GetEmployee(ctx, "")

	assert.ErrorIs(t, err, domain.ErrEmployeeIDRequired)
	assert.Nil(t, result)
	employeeRepo.AssertNotCalled(t, "GetByID")
}

func TestEmployeeUseCase_GetEmployee_NotFound(t *testing.T) {
	ctx := context.Background()
	employeeRepo := &mocks.EmployeeRepository{}
	uc := usecase.NewEmployeeUseCase(employeeRepo)

	employeeRepo.On("GetByID", ctx, "999").Return(nil, domain.ErrEmployeeNotFound)

	result, err := uc.GetEmployee(ctx, "999")

	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
	assert.Nil(t, result)
}

func TestEmployeeUseCase_CreateEmployee_DefaultsApplied(t *testing.T) {
	ctx := context.Background()
	employeeRepo := &mocks.EmployeeRepository{}
	uc := usecase.NewEmployeeUseCase(employeeRepo)

	before := time.Now()
	created := &domain.Employee{ID: 1, Nombre: "Ana", Apellido: "Ruiz", Puesto: "Dev", Activo: true}

	employeeRepo.On("Create", ctx, mock.MatchedBy(func(record domain.EmployeeRecord) bool {
		return record.Nombre == "Ana" &&
			record.Apellido == "Ruiz" &&
			record.Puesto == "Dev" &&
			record.Activo &&
			!record.FechaIngreso.Before(before)
	})).Return(created, nil)

	result, err := uc.CreateEmployee(ctx, domain.NewEmployee{
		Nombre:   "Ana",
		Apellido: "Ruiz",
		Puesto:   "Dev",
	})

	assert.NoError(t, err)
	assert.Equal(t, created, result)
	employeeRepo.AssertExpectations(t)
}

func TestEmployeeUseCase_CreateEmployee_ExplicitFieldsKept(t *testing.T) {
	ctx := context.Background()
	employeeRepo := &mocks.EmployeeRepository{}
	uc := usecase.NewEmployeeUseCase(employeeRepo)

	hired := time.Date(2020, 3, 15, 9, 0, 0, 0, time.UTC)
	created := &domain.Employee{ID: 2, Nombre: "Luis", Apellido: "Soto", Puesto: "QA", FechaIngreso: hired, Activo: false}

	employeeRepo.On("Create", ctx, domain.EmployeeRecord{
		Nombre:       "Luis",
		Apellido:     "Soto",
		Puesto:       "QA",
		FechaIngreso: hired,
		Activo:       false,
	}).Return(created, nil)

	result, err := uc.CreateEmployee(ctx, domain.NewEmployee{
		Nombre:       "Luis",
		Apellido:     "Soto",
		Puesto:       "QA",
		FechaIngreso: lo.ToPtr(hired),
		Activo:       lo.ToPtr(false),
	})

	assert.NoError(t, err)
	assert.Equal(t, created, result)
	employeeRepo.AssertExpectations(t)
}

func TestEmployeeUseCase_CreateEmployee_MissingFields(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name  string
		input domain.NewEmployee
	}{
		{"missing nombre", domain.NewEmployee{Apellido: "Ruiz", Puesto: "Dev"}},
		{"missing apellido", domain.NewEmployee{Nombre: "Ana", Puesto: "Dev"}},
		{"missing puesto", domain.NewEmployee{Nombre: "Ana", Apellido: "Ruiz"}},
		{"all empty", domain.NewEmployee{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			employeeRepo := &mocks.EmployeeRepository{}
			uc := usecase.NewEmployeeUseCase(employeeRepo)

			result, err := uc.CreateEmployee(ctx, tc.input)

			assert.ErrorIs(t, err, domain.ErrEmployeeInvalid)
			assert.Nil(t, result)
			// До стора дойти не должны
			employeeRepo.AssertNotCalled(t, "Create")
		})
	}
}

func TestEmployeeUseCase_UpdateEmployee_Success(t *testing.T) {
	ctx := context.Background()
	employeeRepo := &mocks.EmployeeRepository{}
	uc := usecase.NewEmployeeUseCase(employeeRepo)

	update := domain.EmployeeUpdate{Puesto: lo.ToPtr("Lead")}
	updated := &domain.Employee{ID: 7, Nombre: "Ana", Apellido: "Ruiz", Puesto: "Lead", Activo: true}

	employeeRepo.On("Update", ctx, "7", update).Return(updated, nil)

	result, err := uc.UpdateEmployee(ctx, "7", update)

	assert.NoError(t, err)
	assert.Equal(t, "Lead", result.Puesto)
}

func TestEmployeeUseCase_UpdateEmployee_EmptyBodyIsNoOp(t *testing.T) {
	ctx := context.Background()
	employeeRepo := &mocks.EmployeeRepository{}
	uc := usecase.NewEmployeeUseCase(employeeRepo)

	current := &domain.Employee{ID: 7, Nombre: "Ana", Apellido: "Ruiz", Puesto: "Dev", Activo: true}

	employeeRepo.On("GetByID", ctx, "7").Return(current, nil)

	result, err := uc.UpdateEmployee(ctx, "7", domain.EmployeeUpdate{})

	assert.NoError(t, err)
	assert.Equal(t, current, result)
	employeeRepo.AssertNotCalled(t, "Update")
}

func TestEmployeeUseCase_UpdateEmployee_EmptyID(t *testing.T) {
	ctx := context.Background()
	employeeRepo := &mocks.EmployeeRepository{}
	uc := usecase.NewEmployeeUseCase(employeeRepo)

	result, err := uc.UpdateEmployee(ctx, "", domain.EmployeeUpdate{Activo: lo.ToPtr(false)})

	assert.ErrorIs(t, err, domain.ErrEmployeeIDRequired)
	assert.Nil(t, result)
	employeeRepo.AssertNotCalled(t, "Update")
}

func TestEmployeeUseCase_DeleteEmployee_Success(t *testing.T) {
	ctx := context.Background()
	employeeRepo := &mocks.EmployeeRepository{}
	uc := usecase.NewEmployeeUseCase(employeeRepo)

	deleted := &domain.Employee{ID: 7, Nombre: "Ana", Apellido: "Ruiz", Puesto: "Dev", Activo: true}

	employeeRepo.On("Delete", ctx, "7").Return(deleted, nil)

	result, err := uc.DeleteEmployee(ctx, "7")

	assert.NoError(t, err)
	assert.Equal(t, deleted, result)
}

func TestEmployeeUseCase_DeleteEmployee_NotFound(t *testing.T) {
	ctx := context.Background()
	employeeRepo := &mocks.EmployeeRepository{}
	uc := usecase.NewEmployeeUseCase(employeeRepo)

	employeeRepo.On("Delete", ctx, "999").Return(nil, domain.ErrEmployeeNotFound)

	result, err := uc.DeleteEmployee(ctx, "999")

	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
	assert.Nil(t, result)
}
