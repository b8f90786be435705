package handler

import (
	"net/http"

	"empleados-api/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// EmployeeHandler обрабатывает HTTP-запросы, связанные с сотрудниками.
type EmployeeHandler struct {
	*BaseHandler
	employeeUseCase domain.EmployeeUseCase
}

// NewEmployeeHandler создает новый экземпляр EmployeeHandler.
func NewEmployeeHandler(employeeUseCase domain.EmployeeUseCase, logger *logrus.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		BaseHandler:     NewBaseHandler(logger),
		employeeUseCase: employeeUseCase,
	}
}

// List обрабатывает запрос списка всех сотрудников.
func (h *EmployeeHandler) List(c echo.Context) error {
	logEntry := h.logRequest(c, "list_employees")
	logEntry.Info("Listing employees")

	employees, err := h.employeeUseCase.ListEmployees(c.Request().Context())
	if err != nil {
		logEntry.WithError(err).Error("Failed to list employees")
		return c.JSON(getHTTPStatusCode(err), toErrorEnvelope(err))
	}

	logEntry.WithField("total", len(employees)).Info("Employees listed successfully")
	return c.JSON(http.StatusOK, listResponse(employees))
}

// Get обрабатывает запрос одного сотрудника по id.
func (h *EmployeeHandler) Get(c echo.Context) error {
	id := c.Param("id")
	logEntry := h.logRequest(c, "get_employee").WithField("employee_id", id)
	logEntry.Info("Getting employee")

	employee, err := h.employeeUseCase.GetEmployee(c.Request().Context(), id)
	if err != nil {
		logEntry.WithError(err).Warn("Failed to get employee")
		return c.JSON(getHTTPStatusCode(err), toErrorEnvelope(err))
	}

	logEntry.Info("Employee retrieved successfully")
	return c.JSON(http.StatusOK, dataResponse(employee))
}

// Create обрабатывает создание нового сотрудника.
func (h *EmployeeHandler) Create(c echo.Context) error {
	var req domain.NewEmployee
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind create employee request")
		return c.JSON(http.StatusBadRequest, errorDetailsResponse("Cuerpo de la petición inválido", err.Error()))
	}

	logEntry := h.logRequest(c, "create_employee").WithFields(logrus.Fields{
		"nombre":   req.Nombre,
		"apellido": req.Apellido,
		"puesto":   req.Puesto,
	})
	logEntry.Info("Creating employee")

	employee, err := h.employeeUseCase.CreateEmployee(c.Request().Context(), req)
	if err != nil {
		logEntry.WithError(err).Error("Failed to create employee")
		return c.JSON(getHTTPStatusCode(err), toErrorEnvelope(err))
	}

	logEntry.WithField("employee_id", employee.ID).Info("Employee created successfully")
	return c.JSON(http.StatusCreated, messageResponse("Empleado creado", employee))
}

// Update обрабатывает частичное обновление сотрудника.
func (h *EmployeeHandler) Update(c echo.Context) error {
	id := c.Param("id")

	var req domain.EmployeeUpdate
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind update employee request")
		return c.JSON(http.StatusBadRequest, errorDetailsResponse("Cuerpo de la petición inválido", err.Error()))
	}

	logEntry := h.logRequest(c, "update_employee").WithField("employee_id", id)
	logEntry.Info("Updating employee")

	employee, err := h.employeeUseCase.UpdateEmployee(c.Request().Context(), id, req)
	if err != nil {
		logEntry.WithError(err).Error("Failed to update employee")
		return c.JSON(getHTTPStatusCode(err), toErrorEnvelope(err))
	}

	logEntry.Info("Employee updated successfully")
	return c.JSON(http.StatusOK, messageResponse("Empleado actualizado", employee))
}

// Delete обрабатывает физическое удаление сотрудника.
func (h *EmployeeHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	logEntry := h.logRequest(c, "delete_employee").WithField("employee_id", id)
	logEntry.Info("Deleting employee")

	employee, err := h.employeeUseCase.DeleteEmployee(c.Request().Context(), id)
	if err != nil {
		logEntry.WithError(err).Error("Failed to delete employee")
		return c.JSON(getHTTPStatusCode(err), toErrorEnvelope(err))
	}

	logEntry.Info("Employee deleted successfully")
	return c.JSON(http.StatusOK, messageResponse("Empleado eliminado", employee))
}
