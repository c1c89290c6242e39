package attendance

import (
	"context"
	"time"

	"github.com/ogurasousui/hrms-lite/internal/core/civildate"
)

// Repository は勤怠レコードの永続化を行うインターフェースです。
type Repository interface {
	Create(ctx context.Context, attendance *Attendance) (*Attendance, error)
	UpdateStatus(ctx context.Context, id string, status Status, updatedAt time.Time) (*Attendance, error)
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*Attendance, error)
	FindByEmployeeAndDate(ctx context.Context, employeeID string, date civildate.Date) (*Attendance, error)
	List(ctx context.Context) ([]*Attendance, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]*Attendance, error)
	Count(ctx context.Context) (int64, error)
}
