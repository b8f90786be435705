package handler

import (
	"empleados-api/internal/domain"

	"github.com/labstack/echo/v4"
)

// RegisterRoutes вешает маршруты API на echo-инстанс.
// Маршруты данных закрыты StoreGuard: при отсутствии конфигурации Supabase
// они отвечают 500, не обращаясь к стору.
func RegisterRoutes(e *echo.Echo, status *StatusHandler, employees *EmployeeHandler, state domain.ConnState) {
	api := e.Group("/api")

	api.GET("/status", status.GetStatus)

	grp := api.Group("/empleados", StoreGuard(state))
	grp.GET("", employees.List)
	grp.GET("/:id", employees.Get)
	grp.POST("", employees.Create)
	grp.PUT("/:id", employees.Update)
	grp.DELETE("/:id", employees.Delete)
}
