package domain

import "context"

// EmployeeUseCase определяет бизнес-логику для работы с сотрудниками.
type EmployeeUseCase interface {
	ListEmployees(ctx context.Context) ([]*Employee, error)
	GetEmployee(ctx context.Context, id string) (*Employee, error)
	CreateEmployee(ctx context.Context, input NewEmployee) (*Employee, error)
	UpdateEmployee(ctx context.Context, id string, update EmployeeUpdate) (*Employee, error)
	DeleteEmployee(ctx context.Context, id string) (*Employee, error)
}
