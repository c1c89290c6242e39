package attendance

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ogurasousui/hrms-lite/internal/core/civildate"
	"github.com/ogurasousui/hrms-lite/internal/core/employee"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// TransactionManager はトランザクション制御の抽象化です。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (noopTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

// EmployeeDirectory は勤怠登録時の従業員参照に使用します。
type EmployeeDirectory interface {
	GetByEmployeeID(ctx context.Context, employeeID string) (*employee.Employee, error)
}

// Service は勤怠に関するユースケースをまとめます。
type Service struct {
	repo      Repository
	employees EmployeeDirectory
	clock     Clock
	tx        TransactionManager
}

// UseCase は勤怠ユースケースの公開インターフェースです。
type UseCase interface {
	MarkAttendance(ctx context.Context, in MarkAttendanceInput) (*Attendance, error)
	ListAttendance(ctx context.Context) ([]*Attendance, error)
	ListEmployeeAttendance(ctx context.Context, in ListEmployeeAttendanceInput) (*EmployeeAttendanceResult, error)
	GetAttendance(ctx context.Context, in GetAttendanceInput) (*Attendance, error)
	UpdateAttendanceStatus(ctx context.Context, in UpdateAttendanceStatusInput) (*Attendance, error)
	DeleteAttendance(ctx context.Context, in DeleteAttendanceInput) error
	CountAttendance(ctx context.Context) (int64, error)
}

// NewService は Service を生成します。
func NewService(repo Repository, employees EmployeeDirectory, clock Clock, tx TransactionManager) *Service {
	if clock == nil {
		clock = realClock{}
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	return &Service{repo: repo, employees: employees, clock: clock, tx: tx}
}

// MarkAttendanceInput は勤怠登録時の入力です。Date は YYYY-MM-DD 形式の文字列です。
type MarkAttendanceInput struct {
	EmployeeID string
	Date       string
	Status     Status
}

// ListEmployeeAttendanceInput は従業員別勤怠取得時の入力です。
type ListEmployeeAttendanceInput struct {
	EmployeeID string
}

// EmployeeAttendanceResult は従業員別勤怠の取得結果です。
type EmployeeAttendanceResult struct {
	Employee *employee.Employee
	Stats    Stats
	Records  []*Attendance
}

// GetAttendanceInput は勤怠取得時の入力です。
type GetAttendanceInput struct {
	ID string
}

// UpdateAttendanceStatusInput はステータス更新時の入力です。
type UpdateAttendanceStatusInput struct {
	ID     string
	Status Status
}

// DeleteAttendanceInput は勤怠削除時の入力です。
type DeleteAttendanceInput struct {
	ID string
}

// MarkAttendance は勤怠を登録します。ステータス検証、従業員の存在確認、日付解釈、
// (従業員, 日付) の一意性確認の順に行います。一意性はデータベース制約でも保証されます。
func (s *Service) MarkAttendance(ctx context.Context, in MarkAttendanceInput) (*Attendance, error) {
	employeeID := strings.TrimSpace(in.EmployeeID)
	if employeeID == "" {
		return nil, ErrInvalidEmployeeID
	}

	if !isValidStatus(in.Status) {
		return nil, ErrInvalidStatus
	}

	if _, err := s.employees.GetByEmployeeID(ctx, employeeID); err != nil {
		return nil, err
	}

	date, err := civildate.Parse(in.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	var created *Attendance
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		if err := s.ensureNotMarked(txCtx, employeeID, date); err != nil {
			return err
		}

		now := s.clock.Now()
		record := &Attendance{
			EmployeeID: employeeID,
			Date:       date,
			Status:     in.Status,
			CreatedAt:  now,
			UpdatedAt:  now,
		}

		result, err := s.repo.Create(txCtx, record)
		if err != nil {
			return err
		}

		created = result
		return nil
	}); err != nil {
		return nil, err
	}

	return created, nil
}

// ListAttendance は勤怠の一覧を日付の降順で取得します。
func (s *Service) ListAttendance(ctx context.Context) ([]*Attendance, error) {
	var records []*Attendance
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		result, err := s.repo.List(txCtx)
		if err != nil {
			return err
		}
		records = result
		return nil
	}); err != nil {
		return nil, err
	}
	return records, nil
}

// ListEmployeeAttendance は指定従業員の勤怠一覧と出欠集計を取得します。
func (s *Service) ListEmployeeAttendance(ctx context.Context, in ListEmployeeAttendanceInput) (*EmployeeAttendanceResult, error) {
	employeeID := strings.TrimSpace(in.EmployeeID)
	if employeeID == "" {
		return nil, ErrInvalidEmployeeID
	}

	emp, err := s.employees.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	records, err := s.repo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	stats := Stats{TotalRecords: len(records)}
	for _, record := range records {
		switch record.Status {
		case StatusPresent:
			stats.PresentDays++
		case StatusAbsent:
			stats.AbsentDays++
		}
	}

	return &EmployeeAttendanceResult{Employee: emp, Stats: stats, Records: records}, nil
}

// GetAttendance は ID で勤怠レコードを取得します。
func (s *Service) GetAttendance(ctx context.Context, in GetAttendanceInput) (*Attendance, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}
	return s.repo.FindByID(ctx, in.ID)
}

// UpdateAttendanceStatus は勤怠ステータスを更新し、更新後のレコードを返します。
// Present と Absent の間の遷移に制限はありません。
func (s *Service) UpdateAttendanceStatus(ctx context.Context, in UpdateAttendanceStatusInput) (*Attendance, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	if !isValidStatus(in.Status) {
		return nil, ErrInvalidStatus
	}

	var updated *Attendance
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		if _, err := s.repo.FindByID(txCtx, in.ID); err != nil {
			return err
		}

		result, err := s.repo.UpdateStatus(txCtx, in.ID, in.Status, s.clock.Now())
		if err != nil {
			return err
		}

		updated = result
		return nil
	}); err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteAttendance は勤怠レコードを削除します。
func (s *Service) DeleteAttendance(ctx context.Context, in DeleteAttendanceInput) error {
	if strings.TrimSpace(in.ID) == "" {
		return fmt.Errorf("id: %w", ErrInvalidID)
	}
	return s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		return s.repo.Delete(txCtx, in.ID)
	})
}

// CountAttendance は勤怠レコードの総数を返します。
func (s *Service) CountAttendance(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *Service) ensureNotMarked(ctx context.Context, employeeID string, date civildate.Date) error {
	record, err := s.repo.FindByEmployeeAndDate(ctx, employeeID, date)
	if err != nil && !errors.Is(err, ErrAttendanceNotFound) {
		return err
	}
	if record != nil {
		return ErrAlreadyMarked
	}
	return nil
}

func isValidStatus(status Status) bool {
	switch status {
	case StatusPresent, StatusAbsent:
		return true
	default:
		return false
	}
}
