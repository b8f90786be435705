package handler

import (
	"net/http"

	"empleados-api/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// StatusHandler отвечает на health-check запросы.
type StatusHandler struct {
	*BaseHandler
	state domain.ConnState
}

// NewStatusHandler создает новый экземпляр StatusHandler.
func NewStatusHandler(state domain.ConnState, logger *logrus.Logger) *StatusHandler {
	return &StatusHandler{
		BaseHandler: NewBaseHandler(logger),
		state:       state,
	}
}

// GetStatus сообщает о живости API и о состоянии подключения к Supabase.
func (h *StatusHandler) GetStatus(c echo.Context) error {
	if h.state != domain.ConnStateConnected {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":   "error",
			"message":  "Supabase no configurado",
			"database": "sin configurar",
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":   "success",
		"message":  "API funcionando",
		"database": "conectada",
	})
}
