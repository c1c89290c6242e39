package attendance

import "errors"

var (
	// ErrAttendanceNotFound は勤怠レコードが存在しない場合に返却されます。
	ErrAttendanceNotFound = errors.New("attendance record not found")
	// ErrAlreadyMarked は同一従業員・同一日の重複登録時に返却されます。
	ErrAlreadyMarked = errors.New("attendance already marked for this date")
	// ErrInvalidStatus はステータスが Present / Absent 以外の場合に返却されます。
	ErrInvalidStatus = errors.New("status must be either Present or Absent")
	// ErrInvalidDate は日付が YYYY-MM-DD 形式でない場合に返却されます。
	ErrInvalidDate = errors.New("invalid date format")
	// ErrInvalidEmployeeID は従業員 ID が未指定の場合に返却されます。
	ErrInvalidEmployeeID = errors.New("employee_id is required")
	// ErrInvalidID はIDが不正な場合に返却されます。
	ErrInvalidID = errors.New("invalid id")
)
