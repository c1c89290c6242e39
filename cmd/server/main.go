package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ogurasousui/hrms-lite/internal/adapters/http/handler"
	"github.com/ogurasousui/hrms-lite/internal/adapters/repository/postgres"
	"github.com/ogurasousui/hrms-lite/internal/core/analytics"
	"github.com/ogurasousui/hrms-lite/internal/core/attendance"
	"github.com/ogurasousui/hrms-lite/internal/core/employee"
	"github.com/ogurasousui/hrms-lite/internal/platform/config"
	pg "github.com/ogurasousui/hrms-lite/internal/platform/db/postgres"
	"github.com/ogurasousui/hrms-lite/internal/platform/logging"
	"github.com/ogurasousui/hrms-lite/internal/platform/server"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "assets/local.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Logging.Level)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	dbPool, err := pg.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("failed to initialize database pool", zap.Error(err))
	}
	defer dbPool.Close()

	txManager := pg.NewTransactionManager(dbPool)
	employeeRepo := postgres.NewEmployeeRepository(dbPool)
	attendanceRepo := postgres.NewAttendanceRepository(dbPool)

	employeeSvc := employee.NewService(employeeRepo, nil, txManager)
	attendanceSvc := attendance.NewService(attendanceRepo, employeeSvc, nil, txManager)
	analyticsSvc := analytics.NewService(attendanceRepo, employeeRepo, nil)

	httpServer := server.New(cfg.Server.ListenAddr, cfg.Server.Mode, server.Handlers{
		Employee:   handler.NewEmployeeHandler(employeeSvc, logger),
		Attendance: handler.NewAttendanceHandler(attendanceSvc, logger),
		Analytics:  handler.NewAnalyticsHandler(analyticsSvc, logger),
		Health:     handler.NewHealthHandler(),
	}, logger)

	logger.Info("HTTP server listening", zap.String("addr", cfg.Server.ListenAddr))

	if err := httpServer.Run(ctx); err != nil {
		logger.Fatal("server stopped with error", zap.Error(err))
	}
}
