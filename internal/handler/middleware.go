package handler

import (
	"errors"
	"net/http"
	"time"

	"empleados-api/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// LoggingMiddleware добавляет структурированное логирование
func LoggingMiddleware(logger *logrus.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			// Выполняем запрос
			err := next(c)

			// Логируем детали запроса
			latency := time.Since(start)
			status := c.Response().Status

			entry := logger.WithFields(logrus.Fields{
				"method":     c.Request().Method,
				"uri":        c.Request().URL.Path,
				"status":     status,
				"latency":    latency,
				"user_agent": c.Request().UserAgent(),
				"ip":         c.RealIP(),
			})

			if err != nil {
				entry = entry.WithField("error", err.Error())
			}

			if status >= 500 {
				entry.Error("Server error")
			} else if status >= 400 {
				entry.Warn("Client error")
			} else {
				entry.Info("Request processed")
			}

			return err
		}
	}
}

// StoreGuard отвечает 500 на маршрутах данных, когда Supabase не
// сконфигурирован. До стора запрос в этом случае не доходит.
func StoreGuard(state domain.ConnState) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if state != domain.ConnStateConnected {
				return c.JSON(http.StatusInternalServerError, toErrorEnvelope(domain.ErrMissingStoreConfig))
			}
			return next(c)
		}
	}
}

// ErrorHandler приводит необработанные ошибки (паники, неизвестные маршруты)
// к единому envelope.
func ErrorHandler(logger *logrus.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			code = httpErr.Code
		}

		if code >= 500 {
			logger.WithError(err).Error("Unhandled error")
		}

		var body map[string]interface{}
		switch code {
		case http.StatusNotFound:
			body = errorResponse("Recurso no encontrado")
		case http.StatusMethodNotAllowed:
			body = errorResponse("Método no permitido")
		default:
			body = errorDetailsResponse("internal", err.Error())
		}

		_ = c.JSON(code, body)
	}
}
