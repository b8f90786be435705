package domain

import (
	"errors"
	"fmt"
)

// Domain errors (для бизнес-логики)
var (
	// Validation errors
	ErrEmployeeInvalid    = errors.New("nombre, apellido and puesto are required")
	ErrEmployeeIDRequired = errors.New("employee id is required")

	// Employee errors
	ErrEmployeeNotFound = errors.New("employee not found")

	// Config errors
	ErrMissingStoreConfig = errors.New("supabase credentials are not configured")
)

// StoreError оборачивает ошибку, которую вернул Supabase при выполнении запроса.
// Исходное сообщение стора попадает в поле details ответа.
type StoreError struct {
	Err error
}

func NewStoreError(err error) *StoreError {
	return &StoreError{Err: err}
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store request failed: %v", e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
