package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/hrms-lite/internal/core/attendance"
	"github.com/ogurasousui/hrms-lite/internal/core/civildate"
	"github.com/ogurasousui/hrms-lite/internal/core/employee"
	pgdb "github.com/ogurasousui/hrms-lite/internal/platform/db/postgres"
)

const (
	employeeDateUniqueConstraint = "attendance_employee_id_date_key"
	employeeForeignKeyConstraint = "attendance_employee_id_fkey"
	statusCheckConstraint        = "attendance_status_check"
)

// AttendanceRepository は PostgreSQL を利用した勤怠永続化の実装です。
type AttendanceRepository struct {
	pool pgdb.Queryer
}

// NewAttendanceRepository は AttendanceRepository を生成します。
func NewAttendanceRepository(pool pgdb.Queryer) *AttendanceRepository {
	return &AttendanceRepository{pool: pool}
}

// Create は勤怠レコードを新規作成します。(employee_id, date) の一意性は
// データベースの一意制約で保証され、違反は ErrAlreadyMarked へ変換されます。
func (r *AttendanceRepository) Create(ctx context.Context, a *attendance.Attendance) (*attendance.Attendance, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO attendance (id, employee_id, date, status, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, employee_id, date, status, created_at, updated_at
    `,
		uuid.NewString(),
		a.EmployeeID,
		a.Date.Time(),
		string(a.Status),
		a.CreatedAt,
		a.UpdatedAt,
	)

	created, err := scanAttendance(row)
	if err != nil {
		return nil, translateAttendancePgError(err)
	}
	return created, nil
}

// UpdateStatus はステータスと更新日時を変更し、更新後のレコードを返します。
func (r *AttendanceRepository) UpdateStatus(ctx context.Context, id string, status attendance.Status, updatedAt time.Time) (*attendance.Attendance, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE attendance
           SET status = $1,
               updated_at = $2
         WHERE id = $3
        RETURNING id, employee_id, date, status, created_at, updated_at
    `, string(status), updatedAt, id)

	updated, err := scanAttendance(row)
	if err != nil {
		return nil, translateAttendancePgError(err)
	}
	return updated, nil
}

// Delete は勤怠レコードを削除します。
func (r *AttendanceRepository) Delete(ctx context.Context, id string) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `DELETE FROM attendance WHERE id = $1`, id)
	if err != nil {
		return translateAttendancePgError(err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

// FindByID は ID で勤怠レコードを取得します。
func (r *AttendanceRepository) FindByID(ctx context.Context, id string) (*attendance.Attendance, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT id, employee_id, date, status, created_at, updated_at
          FROM attendance
         WHERE id = $1
         LIMIT 1
    `, id)

	found, err := scanAttendance(row)
	if err != nil {
		return nil, translateAttendancePgError(err)
	}
	return found, nil
}

// FindByEmployeeAndDate は従業員と日付の組で勤怠レコードを取得します。
func (r *AttendanceRepository) FindByEmployeeAndDate(ctx context.Context, employeeID string, date civildate.Date) (*attendance.Attendance, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT id, employee_id, date, status, created_at, updated_at
          FROM attendance
         WHERE employee_id = $1 AND date = $2
         LIMIT 1
    `, employeeID, date.Time())

	found, err := scanAttendance(row)
	if err != nil {
		return nil, translateAttendancePgError(err)
	}
	return found, nil
}

// List は勤怠レコードの一覧を日付の降順で取得します。
func (r *AttendanceRepository) List(ctx context.Context) ([]*attendance.Attendance, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT id, employee_id, date, status, created_at, updated_at
          FROM attendance
         ORDER BY date DESC, created_at DESC
    `)
	if err != nil {
		return nil, translateAttendancePgError(err)
	}
	defer rows.Close()

	return collectAttendance(rows)
}

// ListByEmployee は指定従業員の勤怠レコードを日付の降順で取得します。
func (r *AttendanceRepository) ListByEmployee(ctx context.Context, employeeID string) ([]*attendance.Attendance, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT id, employee_id, date, status, created_at, updated_at
          FROM attendance
         WHERE employee_id = $1
         ORDER BY date DESC, created_at DESC
    `, employeeID)
	if err != nil {
		return nil, translateAttendancePgError(err)
	}
	defer rows.Close()

	return collectAttendance(rows)
}

// Count は勤怠レコードの総数を返します。
func (r *AttendanceRepository) Count(ctx context.Context) (int64, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)

	var count int64
	if err := exec.QueryRow(ctx, `SELECT COUNT(*) FROM attendance`).Scan(&count); err != nil {
		return 0, translateAttendancePgError(err)
	}
	return count, nil
}

func collectAttendance(rows pgx.Rows) ([]*attendance.Attendance, error) {
	records := make([]*attendance.Attendance, 0)
	for rows.Next() {
		record, err := scanAttendance(rows)
		if err != nil {
			return nil, translateAttendancePgError(err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, translateAttendancePgError(err)
	}

	return records, nil
}

func scanAttendance(row pgx.Row) (*attendance.Attendance, error) {
	var (
		id                   string
		employeeID           string
		rawDate              any
		status               string
		createdAt, updatedAt time.Time
	)

	if err := row.Scan(&id, &employeeID, &rawDate, &status, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, attendance.ErrAttendanceNotFound
		}
		return nil, err
	}

	// 過去のデータ移行の経緯で date 列は日付型と文字列のどちらでも格納され得ます。
	// 解釈できないレコードはゼロ日付のまま返し、集計側で読み飛ばします。
	date, err := civildate.Normalize(rawDate)
	if err != nil {
		date = civildate.Date{}
	}

	return &attendance.Attendance{
		ID:         id,
		EmployeeID: employeeID,
		Date:       date,
		Status:     attendance.Status(status),
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}, nil
}

func translateAttendancePgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return attendance.ErrAttendanceNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			if pgErr.ConstraintName == employeeDateUniqueConstraint {
				return attendance.ErrAlreadyMarked
			}
		case foreignKeyViolationCode:
			if pgErr.ConstraintName == employeeForeignKeyConstraint {
				return employee.ErrEmployeeNotFound
			}
		case checkViolationCode:
			if pgErr.ConstraintName == statusCheckConstraint {
				return attendance.ErrInvalidStatus
			}
		}
	}

	return err
}
