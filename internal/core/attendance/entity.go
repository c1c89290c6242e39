package attendance

import (
	"time"

	"github.com/ogurasousui/hrms-lite/internal/core/civildate"
)

// Status は勤怠の状態を表します。
type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
)

// Attendance は勤怠レコードです。EmployeeID は従業員の業務キーを値として保持し、
// (EmployeeID, Date) の組は一意です。
type Attendance struct {
	ID         string
	EmployeeID string
	Date       civildate.Date
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Stats は従業員ごとの勤怠集計です。
type Stats struct {
	TotalRecords int
	PresentDays  int
	AbsentDays   int
}
