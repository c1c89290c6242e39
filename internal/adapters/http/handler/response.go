package handler

import (
	"time"

	"github.com/ogurasousui/hrms-lite/internal/core/attendance"
	"github.com/ogurasousui/hrms-lite/internal/core/civildate"
	"github.com/ogurasousui/hrms-lite/internal/core/employee"
)

// employeeResponse は従業員の API 表現です。タイムスタンプは RFC3339 で出力されます。
type employeeResponse struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee_id"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func toEmployeeResponse(e *employee.Employee) employeeResponse {
	return employeeResponse{
		ID:         e.ID,
		EmployeeID: e.EmployeeID,
		FullName:   e.FullName,
		Email:      e.Email,
		Department: e.Department,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func toEmployeeResponses(employees []*employee.Employee) []employeeResponse {
	result := make([]employeeResponse, 0, len(employees))
	for _, e := range employees {
		result = append(result, toEmployeeResponse(e))
	}
	return result
}

// attendanceResponse は勤怠レコードの API 表現です。日付は YYYY-MM-DD で出力されます。
type attendanceResponse struct {
	ID         string         `json:"id"`
	EmployeeID string         `json:"employee_id"`
	Date       civildate.Date `json:"date"`
	Status     string         `json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

func toAttendanceResponse(a *attendance.Attendance) attendanceResponse {
	return attendanceResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Date:       a.Date,
		Status:     string(a.Status),
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

func toAttendanceResponses(records []*attendance.Attendance) []attendanceResponse {
	result := make([]attendanceResponse, 0, len(records))
	for _, a := range records {
		result = append(result, toAttendanceResponse(a))
	}
	return result
}
