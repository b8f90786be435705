package handler

import (
	"errors"
	"net/http"

	"empleados-api/internal/domain"
)

// Вспомогательные функции построения единого envelope-ответа
// {status, message?, details?, data?, total?}

func listResponse(employees []*domain.Employee) map[string]interface{} {
	return map[string]interface{}{
		"status": "success",
		"total":  len(employees),
		"data":   employees,
	}
}

func dataResponse(employee *domain.Employee) map[string]interface{} {
	return map[string]interface{}{
		"status": "success",
		"data":   employee,
	}
}

func messageResponse(message string, employee *domain.Employee) map[string]interface{} {
	return map[string]interface{}{
		"status":  "success",
		"message": message,
		"data":    employee,
	}
}

func errorResponse(message string) map[string]interface{} {
	return map[string]interface{}{
		"status":  "error",
		"message": message,
	}
}

func errorDetailsResponse(message, details string) map[string]interface{} {
	return map[string]interface{}{
		"status":  "error",
		"message": message,
		"details": details,
	}
}

// getHTTPStatusCode возвращает HTTP-код для доменной ошибки.
func getHTTPStatusCode(err error) int {
	var storeErr *domain.StoreError

	switch {
	// Bad Request (400) - валидация
	case errors.Is(err, domain.ErrEmployeeInvalid), errors.Is(err, domain.ErrEmployeeIDRequired):
		return http.StatusBadRequest

	// Not Found (404) - независимо от того, как стор сообщил об отсутствии
	case errors.Is(err, domain.ErrEmployeeNotFound):
		return http.StatusNotFound

	// Store / config / unexpected (500)
	case errors.As(err, &storeErr), errors.Is(err, domain.ErrMissingStoreConfig):
		return http.StatusInternalServerError

	default:
		return http.StatusInternalServerError
	}
}

// toErrorEnvelope строит тело ответа для доменной ошибки.
func toErrorEnvelope(err error) map[string]interface{} {
	var storeErr *domain.StoreError

	switch {
	case errors.Is(err, domain.ErrEmployeeInvalid):
		return errorResponse("Los campos nombre, apellido y puesto son obligatorios")

	case errors.Is(err, domain.ErrEmployeeIDRequired):
		return errorResponse("El id del empleado es obligatorio")

	case errors.Is(err, domain.ErrEmployeeNotFound):
		return errorResponse("Empleado no encontrado")

	case errors.Is(err, domain.ErrMissingStoreConfig):
		return errorDetailsResponse("Supabase no configurado", "SUPABASE_URL y SUPABASE_KEY son obligatorios")

	case errors.As(err, &storeErr):
		return errorDetailsResponse("Error al consultar la base de datos", storeErr.Err.Error())

	default:
		return errorDetailsResponse("internal", err.Error())
	}
}
