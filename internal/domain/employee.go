package domain

import (
	"context"
	"time"
)

// Employee представляет сущность сотрудника (таблица "empleados" в Supabase).
type Employee struct {
	ID           int       `json:"id"`
	Nombre       string    `json:"nombre"`
	Apellido     string    `json:"apellido"`
	Puesto       string    `json:"puesto"`
	FechaIngreso time.Time `json:"fecha_ingreso"`
	Activo       bool      `json:"activo"`
}

// NewEmployee — входные данные создания сотрудника.
// Идентификатор назначает хранилище; fecha_ingreso и activo опциональны.
type NewEmployee struct {
	Nombre       string     `json:"nombre" validate:"required"`
	Apellido     string     `json:"apellido" validate:"required"`
	Puesto       string     `json:"puesto" validate:"required"`
	FechaIngreso *time.Time `json:"fecha_ingreso"`
	Activo       *bool      `json:"activo"`
}

// EmployeeRecord — запись для вставки после применения дефолтов.
type EmployeeRecord struct {
	Nombre       string    `json:"nombre"`
	Apellido     string    `json:"apellido"`
	Puesto       string    `json:"puesto"`
	FechaIngreso time.Time `json:"fecha_ingreso"`
	Activo       bool      `json:"activo"`
}

// EmployeeUpdate — частичное обновление: nil-поля не трогаются.
type EmployeeUpdate struct {
	Nombre   *string `json:"nombre"`
	Apellido *string `json:"apellido"`
	Puesto   *string `json:"puesto"`
	Activo   *bool   `json:"activo"`
}

// Fields возвращает только заданные поля в виде, пригодном для PATCH-запроса.
func (u EmployeeUpdate) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if u.Nombre != nil {
		fields["nombre"] = *u.Nombre
	}
	if u.Apellido != nil {
		fields["apellido"] = *u.Apellido
	}
	if u.Puesto != nil {
		fields["puesto"] = *u.Puesto
	}
	if u.Activo != nil {
		fields["activo"] = *u.Activo
	}
	return fields
}

// EmployeeRepository определяет контракт для работы с хранилищем сотрудников.
type EmployeeRepository interface {
	List(ctx context.Context) ([]*Employee, error)
	GetByID(ctx context.Context, id string) (*Employee, error)
	Create(ctx context.Context, record EmployeeRecord) (*Employee, error)
	Update(ctx context.Context, id string, update EmployeeUpdate) (*Employee, error)
	Delete(ctx context.Context, id string) (*Employee, error)
}
