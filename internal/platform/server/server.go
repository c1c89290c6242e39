package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ogurasousui/hrms-lite/internal/adapters/http/handler"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Handlers はルーティング対象のハンドラ一式です。
type Handlers struct {
	Employee   *handler.EmployeeHandler
	Attendance *handler.AttendanceHandler
	Analytics  *handler.AnalyticsHandler
	Health     *handler.HealthHandler
}

// Server は HTTP サーバーのライフサイクルを管理します。
type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
}

// New は指定されたアドレスで待ち受ける HTTP サーバーを構築します。mode には gin の
// 動作モード ("debug" / "release" / "test") を指定します。
func New(listenAddr, mode string, handlers Handlers, logger *zap.Logger) *Server {
	gin.SetMode(mode)

	engine := gin.New()
	engine.Use(requestLogger(logger), gin.Recovery())
	registerRoutes(engine, handlers)

	return &Server{
		httpServer: &http.Server{
			Addr:    listenAddr,
			Handler: engine,
		},
		logger: logger,
	}
}

func registerRoutes(engine *gin.Engine, h Handlers) {
	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Route not found"})
	})

	api := engine.Group("/api")

	api.GET("/health", h.Health.Check)

	api.POST("/employees", h.Employee.Create)
	api.GET("/employees", h.Employee.List)
	api.GET("/employees/:id", h.Employee.Get)
	api.DELETE("/employees/:id", h.Employee.Delete)

	api.POST("/attendance", h.Attendance.Mark)
	api.GET("/attendance", h.Attendance.List)
	api.GET("/attendance/employee/:employee_id", h.Attendance.ListByEmployee)
	api.PATCH("/attendance/:id", h.Attendance.UpdateStatus)
	api.DELETE("/attendance/:id", h.Attendance.Delete)

	api.GET("/dashboard", h.Analytics.Dashboard)
	api.GET("/performance", h.Analytics.Performance)
	api.GET("/performance/trend", h.Analytics.Trend)
}

// requestLogger はリクエスト完了時にメソッド・パス・ステータス・所要時間を記録します。
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}

// Run はサーバーを起動し、コンテキストがキャンセルされると Shutdown します。
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("serve HTTP: %w", err)
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown HTTP server: %w", err)
		}
		return <-errCh
	case err := <-errCh:
		return err
	}
}
