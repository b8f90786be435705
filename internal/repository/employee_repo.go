package repository

import (
	"context"
	"errors"
	"sort"

	"empleados-api/internal/domain"

	"github.com/nedpals/supabase-go"
)

const employeesTable = "empleados"

// EmployeeRepository реализует доступ к таблице empleados через PostgREST.
// Каждая операция — ровно один запрос к стору, без ретраев и транзакций.
// Клиент postgrest не принимает context: вызов блокирует до ответа стора.
type EmployeeRepository struct {
	client *supabase.Client
}

// NewEmployeeRepository создает новый экземпляр EmployeeRepository.
func NewEmployeeRepository(client *supabase.Client) domain.EmployeeRepository {
	// Билдер выставляет Prefer: return=representation для Insert и Update,
	// но не для Delete — без заголовка на уровне клиента PostgREST отвечает
	// на DELETE 204 без тела, и удаленную строку вернуть нечем.
	client.DB.AddHeader("Prefer", "return=representation")

	return &EmployeeRepository{
		client: client,
	}
}

// List возвращает всех сотрудников, отсортированных по id по возрастанию.
func (r *EmployeeRepository) List(ctx context.Context) ([]*domain.Employee, error) {
	var rows []*domain.Employee
	if err := r.client.DB.From(employeesTable).Select("*").Execute(&rows); err != nil {
		return nil, domain.NewStoreError(err)
	}

	// Билдер клиента не умеет order, сортируем на месте
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].ID < rows[j].ID
	})

	if rows == nil {
		rows = make([]*domain.Employee, 0)
	}

	return rows, nil
}

// GetByID возвращает сотрудника по id. Пустая выборка — это не ошибка
// стора, а отсутствие строки.
func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	var rows []*domain.Employee
	if err := r.client.DB.From(employeesTable).Select("*").Eq("id", id).Execute(&rows); err != nil {
		return nil, domain.NewStoreError(err)
	}

	if len(rows) == 0 {
		return nil, domain.ErrEmployeeNotFound
	}

	return rows[0], nil
}

// Create вставляет запись и возвращает строку, созданную стором (с id).
func (r *EmployeeRepository) Create(ctx context.Context, record domain.EmployeeRecord) (*domain.Employee, error) {
	var rows []*domain.Employee
	if err := r.client.DB.From(employeesTable).Insert(record).Execute(&rows); err != nil {
		return nil, domain.NewStoreError(err)
	}

	if len(rows) == 0 {
		return nil, domain.NewStoreError(errors.New("insert returned no rows"))
	}

	return rows[0], nil
}

// Update обновляет заданные поля по id и возвращает обновленную строку.
// Пустой результат означает, что строки с таким id нет.
func (r *EmployeeRepository) Update(ctx context.Context, id string, update domain.EmployeeUpdate) (*domain.Employee, error) {
	var rows []*domain.Employee
	if err := r.client.DB.From(employeesTable).Update(update.Fields()).Eq("id", id).Execute(&rows); err != nil {
		return nil, domain.NewStoreError(err)
	}

	if len(rows) == 0 {
		return nil, domain.ErrEmployeeNotFound
	}

	return rows[0], nil
}

// Delete физически удаляет строку по id и возвращает удаленную строку.
func (r *EmployeeRepository) Delete(ctx context.Context, id string) (*domain.Employee, error) {
	var rows []*domain.Employee
	if err := r.client.DB.From(employeesTable).Delete().Eq("id", id).Execute(&rows); err != nil {
		return nil, domain.NewStoreError(err)
	}

	if len(rows) == 0 {
		return nil, domain.ErrEmployeeNotFound
	}

	return rows[0], nil
}
