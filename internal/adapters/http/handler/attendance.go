package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ogurasousui/hrms-lite/internal/core/attendance"
	"go.uber.org/zap"
)

// AttendanceHandler は勤怠 API の HTTP 実装です。
type AttendanceHandler struct {
	svc    attendance.UseCase
	logger *zap.Logger
}

// NewAttendanceHandler は AttendanceHandler を生成します。
func NewAttendanceHandler(svc attendance.UseCase, logger *zap.Logger) *AttendanceHandler {
	return &AttendanceHandler{svc: svc, logger: logger}
}

type markAttendanceRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

// Mark は POST /api/attendance を処理します。
func (h *AttendanceHandler) Mark(c *gin.Context) {
	var req markAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c)
		return
	}

	created, err := h.svc.MarkAttendance(c.Request.Context(), attendance.MarkAttendanceInput{
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		Status:     attendance.Status(req.Status),
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Attendance marked successfully",
		"data":    toAttendanceResponse(created),
	})
}

// List は GET /api/attendance を処理します。
func (h *AttendanceHandler) List(c *gin.Context) {
	records, err := h.svc.ListAttendance(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(records),
		"data":    toAttendanceResponses(records),
	})
}

// ListByEmployee は GET /api/attendance/employee/:employee_id を処理します。
func (h *AttendanceHandler) ListByEmployee(c *gin.Context) {
	result, err := h.svc.ListEmployeeAttendance(c.Request.Context(), attendance.ListEmployeeAttendanceInput{
		EmployeeID: c.Param("employee_id"),
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"employee": gin.H{
			"employee_id": result.Employee.EmployeeID,
			"full_name":   result.Employee.FullName,
			"department":  result.Employee.Department,
		},
		"stats": gin.H{
			"total_records": result.Stats.TotalRecords,
			"present_days":  result.Stats.PresentDays,
			"absent_days":   result.Stats.AbsentDays,
		},
		"data": toAttendanceResponses(result.Records),
	})
}

type updateAttendanceStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus は PATCH /api/attendance/:id を処理します。
func (h *AttendanceHandler) UpdateStatus(c *gin.Context) {
	var req updateAttendanceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c)
		return
	}

	updated, err := h.svc.UpdateAttendanceStatus(c.Request.Context(), attendance.UpdateAttendanceStatusInput{
		ID:     c.Param("id"),
		Status: attendance.Status(req.Status),
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Attendance updated successfully",
		"data":    toAttendanceResponse(updated),
	})
}

// Delete は DELETE /api/attendance/:id を処理します。
func (h *AttendanceHandler) Delete(c *gin.Context) {
	if err := h.svc.DeleteAttendance(c.Request.Context(), attendance.DeleteAttendanceInput{ID: c.Param("id")}); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Attendance deleted successfully",
	})
}
