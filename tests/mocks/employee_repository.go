package mocks

import (
	"context"

	"empleados-api/internal/domain"

	"github.com/stretchr/testify/mock"
)

// EmployeeRepository — мок domain.EmployeeRepository для unit-тестов.
type EmployeeRepository struct {
	mock.Mock
}

func (m *EmployeeRepository) List(ctx context.Context) ([]*domain.Employee, error) {
	args := m.Called(ctx)
	if employees, ok := args.Get(0).([]*domain.Employee); ok {
		return employees, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *EmployeeRepository) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	args := m.Called(ctx, id)
	if employee, ok := args.Get(0).(*domain.Employee); ok {
		return employee, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *EmployeeRepository) Create(ctx context.Context, record domain.EmployeeRecord) (*domain.Employee, error) {
	args := m.Called(ctx, record)
	if employee, ok := args.Get(0).(*domain.Employee); ok {
		return employee, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *EmployeeRepository) Update(ctx context.Context, id string, update domain.EmployeeUpdate) (*domain.Employee, error) {
	args := m.Called(ctx, id, update)
	if employee, ok := args.Get(0).(*domain.Employee); ok {
		return employee, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *EmployeeRepository) Delete(ctx context.Context, id string) (*domain.Employee, error) {
	args := m.Called(ctx, id)
	if employee, ok := args.Get(0).(*domain.Employee); ok {
		return employee, args.Error(1)
	}
	return nil, args.Error(1)
}
