package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"empleados-api/internal/config"
	"empleados-api/internal/database"
	"empleados-api/internal/domain"
	"empleados-api/internal/handler"
	"empleados-api/internal/repository"
	"empleados-api/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	// Логгер
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Конфиг
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Warnf(".env not found: %v", err)
	}

	// Supabase. Состояние подключения вычисляется один раз, до регистрации
	// маршрутов, и дальше только читается.
	state := domain.ConnStateConnected
	var employeeUC domain.EmployeeUseCase

	client, err := database.NewSupabaseClient(cfg)
	if err != nil {
		state = domain.ConnStateConfigError
		logger.Warnf("Supabase client not available: %v", err)
	} else {
		employeeRepo := repository.NewEmployeeRepository(client)
		employeeUC = usecase.NewEmployeeUseCase(employeeRepo)
		logger.Info("Supabase client ready")
	}

	// Echo + Handlers
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(handler.LoggingMiddleware(logger))
	e.HTTPErrorHandler = handler.ErrorHandler(logger)

	statusHandler := handler.NewStatusHandler(state, logger)
	employeeHandler := handler.NewEmployeeHandler(employeeUC, logger)
	handler.RegisterRoutes(e, statusHandler, employeeHandler, state)

	// Запуск сервера
	addr := net.JoinHostPort(cfg.ServerHost, cfg.ServerPort)
	go func() {
		if err := e.Start(addr); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				logger.Infof("Server stopped: %v", err)
			} else {
				// Не смогли занять порт — это единственная фатальная ошибка
				logger.Fatalf("Server failed to start: %v", err)
			}
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Fatalf("Shutdown failed: %v", err)
	}

	logger.Info("Server exited")
}
