package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ogurasousui/hrms-lite/internal/core/attendance"
	"github.com/ogurasousui/hrms-lite/internal/core/employee"
	"go.uber.org/zap"
)

// toHTTPStatus はドメインエラーを HTTP ステータスへ変換します。
func toHTTPStatus(err error) int {
	switch {
	case errors.Is(err, employee.ErrInvalidEmployeeID),
		errors.Is(err, employee.ErrInvalidFullName),
		errors.Is(err, employee.ErrInvalidEmail),
		errors.Is(err, employee.ErrInvalidDepartment),
		errors.Is(err, employee.ErrInvalidID),
		errors.Is(err, employee.ErrEmployeeIDAlreadyExists),
		errors.Is(err, employee.ErrEmailAlreadyExists),
		errors.Is(err, attendance.ErrInvalidStatus),
		errors.Is(err, attendance.ErrInvalidDate),
		errors.Is(err, attendance.ErrInvalidEmployeeID),
		errors.Is(err, attendance.ErrInvalidID),
		errors.Is(err, attendance.ErrAlreadyMarked):
		return http.StatusBadRequest
	case errors.Is(err, employee.ErrEmployeeNotFound),
		errors.Is(err, attendance.ErrAttendanceNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondError はエラーをエンベロープ形式で返します。予期しないエラーは内部ログに
// 記録し、クライアントには汎用メッセージのみを返します。
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	status := toHTTPStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		message = "Internal server error"
	}
	c.JSON(status, gin.H{"success": false, "message": message})
}

func respondInvalidBody(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
}
