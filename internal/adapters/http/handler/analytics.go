package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ogurasousui/hrms-lite/internal/core/analytics"
	"go.uber.org/zap"
)

// AnalyticsHandler は集計 API の HTTP 実装です。
type AnalyticsHandler struct {
	svc    analytics.UseCase
	logger *zap.Logger
}

// NewAnalyticsHandler は AnalyticsHandler を生成します。
func NewAnalyticsHandler(svc analytics.UseCase, logger *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc, logger: logger}
}

// Dashboard は GET /api/dashboard を処理します。
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	summary, err := h.svc.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":                true,
		"totalEmployees":         summary.TotalEmployees,
		"totalAttendanceRecords": summary.TotalAttendanceRecords,
		"presentToday":           summary.PresentToday,
		"absentToday":            summary.AbsentToday,
	})
}

// Performance は GET /api/performance を処理します。
func (h *AnalyticsHandler) Performance(c *gin.Context) {
	summary, err := h.svc.Performance(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"attendance_percentage": summary.AttendancePercentage,
			"total_present":         summary.TotalPresent,
			"total_absent":          summary.TotalAbsent,
			"employee_count":        summary.EmployeeCount,
			"total_records":         summary.TotalRecords,
		},
	})
}

// Trend は GET /api/performance/trend を処理します。直近 30 日分を古い日付から
// 順に返します。
func (h *AnalyticsHandler) Trend(c *gin.Context) {
	points, err := h.svc.Trend(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	data := make([]gin.H, 0, len(points))
	for _, point := range points {
		data = append(data, gin.H{
			"date":            point.Date,
			"present":         point.Present,
			"absent":          point.Absent,
			"total":           point.Total,
			"attendance_rate": point.AttendanceRate,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(data),
		"data":    data,
	})
}
